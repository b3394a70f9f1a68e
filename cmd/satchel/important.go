// Importance commands: list, mark, unmark.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importantCmd = &cobra.Command{
	Use:   "important",
	Short: "List tasks marked as important",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := taskRepo()
		if err != nil {
			return err
		}
		tasks, err := repo.Important()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(tasks)
		}
		printTasks(tasks)
		return nil
	},
}

var markImportantCmd = &cobra.Command{
	Use:   "mark-important <id>",
	Short: "Mark a task as important",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := taskRepo()
		if err != nil {
			return err
		}
		if err := repo.MarkImportant(args[0]); err != nil {
			return err
		}
		fmt.Printf("Marked %s as important\n", args[0])
		return nil
	},
}

var unmarkImportantCmd = &cobra.Command{
	Use:   "unmark-important <id>",
	Short: "Unmark a task as important",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := taskRepo()
		if err != nil {
			return err
		}
		if err := repo.UnmarkImportant(args[0]); err != nil {
			return err
		}
		fmt.Printf("Unmarked %s as important\n", args[0])
		return nil
	},
}
