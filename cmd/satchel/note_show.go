// Note show command displays full note details with content.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noteShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show full note details",
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
		if flagJSON {
			return printJSON(n)
		}

		rule := strings.Repeat("=", 70)
		fmt.Printf("\n%s\n", rule)
		fmt.Printf("Note: %s\n", n.Title)
		fmt.Printf("ID: %s\n", n.ID)
		fmt.Printf("Created: %s\n", n.CreatedAt)
		fmt.Printf("Updated: %s\n", n.UpdatedAt)
		if len(n.Tags) > 0 {
			fmt.Printf("Tags: %s\n", strings.Join(n.Tags, ", "))
		}
		if len(n.LinkedNotes) > 0 {
			fmt.Printf("Linked Notes: %s\n", strings.Join(n.LinkedNotes, ", "))
		}
		if len(n.LinkedTasks) > 0 {
			fmt.Printf("Linked Tasks: %s\n", strings.Join(n.LinkedTasks, ", "))
		}
		fmt.Printf("\n%s\n", strings.Repeat("-", 70))
		fmt.Println(n.Content)
		fmt.Printf("%s\n\n", rule)
		return nil
	},
}
