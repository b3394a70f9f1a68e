// Show command displays a single task.
package main

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single task by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	repo, err := taskRepo()
	if err != nil {
		return err
	}
	t, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(t)
	}
	printTask(t)
	return nil
}
