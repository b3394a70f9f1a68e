// Note linking commands: note-to-note and note-to-task.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteLinkNoteCmd = &cobra.Command{
	Use:   "link-note <source-id> <target-id>",
	Short: "Link one note to another",
	Long: `Link-note records a directional reference from the source note to
the target note. Linking twice is a no-op.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := noteRepo()
		if err != nil {
			return err
		}
		if err := repo.LinkToNote(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Linked note %s -> %s\n", args[0], args[1])
		return nil
	},
}

var noteLinkTaskCmd = &cobra.Command{
	Use:   "link-task <note-id> <task-id>",
	Short: "Link a note to a task",
	Long: `Link-task records a reference from a note to a task. The task must
exist in the task store at link time.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := noteRepo()
		if err != nil {
			return err
		}
		if err := repo.LinkToTask(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Linked task %s to note %s\n", args[1], args[0])
		return nil
	},
}
