// Note export commands: single note and full collection to markdown.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/export"
)

var noteExportOutput string

var noteExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a note to a markdown file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := noteRepo()
		if err != nil {
			return err
		}
		n, err := repo.Get(args[0])
		if err != nil {
			return err
		}
		all, err := repo.List("")
		if err != nil {
			return err
		}
		if err := export.Note(n, all, noteExportOutput); err != nil {
			return err
		}
		if noteExportOutput != "" {
			fmt.Printf("Exported note %s to %s\n", args[0], noteExportOutput)
		} else {
			fmt.Printf("Exported note %s to %s\n", args[0], export.SafeFilename(n.Title))
		}
		return nil
	},
}

func init() {
	noteExportCmd.Flags().StringVar(&noteExportOutput, "output", "", "output file path (default: <note_title>.md)")
}

var noteExportDir string

var noteExportAllCmd = &cobra.Command{
	Use:   "export-all",
	Short: "Export all notes to markdown files with an index",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := noteRepo()
		if err != nil {
			return err
		}
		notes, err := repo.List("")
		if err != nil {
			return err
		}
		count, err := export.All(notes, noteExportDir)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d note(s) to %s/\n", count, noteExportDir)
		if count > 0 {
			fmt.Printf("Index file created at %s/INDEX.md\n", noteExportDir)
		}
		return nil
	},
}

func init() {
	noteExportAllCmd.Flags().StringVar(&noteExportDir, "output-dir", "notes_export", "output directory")
}
