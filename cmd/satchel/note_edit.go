// Note edit command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	noteEditTitle   string
	noteEditContent string
	noteEditTags    []string
)

var noteEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing note",
	Long: `Edit replaces the provided fields of a note. Tags are overwritten
as a whole, not merged. The note's updated timestamp always advances.

Example:
  satchel note edit abc12345 --title "New title"
  satchel note edit abc12345 --tag work --tag draft`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteEdit,
}

func init() {
	noteEditCmd.Flags().StringVar(&noteEditTitle, "title", "", "new title")
	noteEditCmd.Flags().StringVar(&noteEditContent, "content", "", "new content")
	noteEditCmd.Flags().StringArrayVar(&noteEditTags, "tag", nil, "set tags (replaces existing; repeatable)")
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	repo, err := noteRepo()
	if err != nil {
		return err
	}

	var title, content *string
	if cmd.Flags().Changed("title") {
		title = &noteEditTitle
	}
	if cmd.Flags().Changed("content") {
		content = &noteEditContent
	}
	var tags []string
	if cmd.Flags().Changed("tag") {
		tags = noteEditTags
	}

	if err := repo.Edit(args[0], title, content, tags); err != nil {
		return err
	}
	fmt.Printf("Updated note %s\n", args[0])
	return nil
}
