// Add command creates a new task.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/task"
)

var (
	addNotes     string
	addDue       string
	addTags      []string
	addCustomID  string
	addImportant bool
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add creates a new task with the given title.

An 8-character ID is generated unless --id supplies a custom one; a custom
ID must not collide with an existing task.

Example:
  satchel add "Buy milk"
  satchel add "Ship release" --due 2025-11-20 --tag work --tag urgent
  satchel add "Call dentist" --id dentist1 --important`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addNotes, "notes", "", "optional notes for the task")
	addCmd.Flags().StringVar(&addDue, "due", "", "optional due date (free-form; YYYY-MM-DD sorts chronologically)")
	addCmd.Flags().StringArrayVar(&addTags, "tag", nil, "tag (repeatable)")
	addCmd.Flags().StringVar(&addCustomID, "id", "", "custom task ID (must be unique)")
	addCmd.Flags().BoolVar(&addImportant, "important", false, "mark task as important")
}

func runAdd(cmd *cobra.Command, args []string) error {
	repo, err := taskRepo()
	if err != nil {
		return err
	}
	t, err := repo.Add(task.NewTask{
		Title:     args[0],
		Notes:     addNotes,
		Due:       addDue,
		Tags:      addTags,
		CustomID:  addCustomID,
		Important: addImportant,
	})
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(t)
	}
	fmt.Printf("Added task %s\n", t.ID)
	return nil
}
