// Note create command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	noteCreateContent  string
	noteCreateTags     []string
	noteCreateCustomID string
)

var noteCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new note",
	Long: `Create adds a note document. Content may contain markdown.

Example:
  satchel note create "Meeting notes" --content "# Agenda" --tag work`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteCreate,
}

func init() {
	noteCreateCmd.Flags().StringVar(&noteCreateContent, "content", "", "note content (markdown supported)")
	noteCreateCmd.Flags().StringArrayVar(&noteCreateTags, "tag", nil, "tag (repeatable)")
	noteCreateCmd.Flags().StringVar(&noteCreateCustomID, "id", "", "custom note ID (must be unique)")
}

func runNoteCreate(cmd *cobra.Command, args []string) error {
	repo, err := noteRepo()
	if err != nil {
		return err
	}
	n, err := repo.Create(args[0], noteCreateContent, noteCreateTags, noteCreateCustomID)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(n)
	}
	fmt.Printf("Created note %s\n", n.ID)
	return nil
}
