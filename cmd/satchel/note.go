// Note command group for the knowledge-base side of satchel.
package main

import (
	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long: `Note groups the knowledge-base commands: create, list, search,
show, edit, delete, linking, and markdown export.`,
}

func init() {
	noteCmd.AddCommand(noteCreateCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteSearchCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteLinkNoteCmd)
	noteCmd.AddCommand(noteLinkTaskCmd)
	noteCmd.AddCommand(noteExportCmd)
	noteCmd.AddCommand(noteExportAllCmd)
}
