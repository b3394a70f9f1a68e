// Link command records a directional task relationship.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link <source-id> <target-id>",
	Short: "Link one task to another",
	Long: `Link records a directional reference from the source task to the
target task. No reciprocal link is created. Linking twice is a no-op.

Example:
  satchel link abc12345 def67890`,
	Args: cobra.ExactArgs(2),
	RunE: runLink,
}

func runLink(cmd *cobra.Command, args []string) error {
	repo, err := taskRepo()
	if err != nil {
		return err
	}
	if err := repo.Link(args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("Linked %s -> %s\n", args[0], args[1])
	return nil
}
