// Note list and search commands.
package main

import (
	"github.com/spf13/cobra"
)

var noteListTag string

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := noteRepo()
		if err != nil {
			return err
		}
		notes, err := repo.List(noteListTag)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(notes)
		}
		printNotes(notes)
		return nil
	},
}

func init() {
	noteListCmd.Flags().StringVar(&noteListTag, "tag", "", "filter by tag")
}

var noteSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes by keyword in title or content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := noteRepo()
		if err != nil {
			return err
		}
		notes, err := repo.Search(args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(notes)
		}
		printNotes(notes)
		return nil
	},
}
