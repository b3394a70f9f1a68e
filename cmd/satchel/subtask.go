// Subtask commands: link a task under a parent and show a parent's children.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addSubtaskCmd = &cobra.Command{
	Use:   "add-subtask <parent-id> <subtask-id>",
	Short: "Link an existing task as a subtask of a parent task",
	Long: `Add-subtask records an existing task as a child of the parent.
Both tasks must exist. A task may be a subtask of several parents.

Example:
  satchel add-subtask abc12345 def67890`,
	Args: cobra.ExactArgs(2),
	RunE: runAddSubtask,
}

func runAddSubtask(cmd *cobra.Command, args []string) error {
	repo, err := taskRepo()
	if err != nil {
		return err
	}
	sub, err := repo.AddSubtask(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("Linked task %s as subtask to parent %s\n", sub.ID, args[0])
	return nil
}

var showSubtasksCmd = &cobra.Command{
	Use:   "show-subtasks <parent-id>",
	Short: "Show all subtasks for a parent task",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowSubtasks,
}

func runShowSubtasks(cmd *cobra.Command, args []string) error {
	repo, err := taskRepo()
	if err != nil {
		return err
	}
	parent, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	subs, err := repo.Subtasks(args[0])
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(subs)
	}
	if len(subs) == 0 {
		fmt.Printf("No subtasks for task [%s] %s\n", parent.ID, color(colorTitle, parent.Title))
		return nil
	}
	fmt.Printf("Subtasks for [%s] %s:\n", parent.ID, color(colorTitle, parent.Title))
	printTasks(subs)
	return nil
}
