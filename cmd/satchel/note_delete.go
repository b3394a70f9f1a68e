// Note delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Long: `Delete removes a note and strips its ID from every other note's
linked notes, so no dangling note references remain.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := noteRepo()
		if err != nil {
			return err
		}
		if err := repo.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted note %s\n", args[0])
		return nil
	},
}
