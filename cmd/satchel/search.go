// Search command finds tasks by keyword.
package main

import (
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks by keyword in title or notes",
	Long: `Search matches the query case-insensitively against every task's
title and notes.

Example:
  satchel search milk`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	repo, err := taskRepo()
	if err != nil {
		return err
	}
	tasks, err := repo.Search(args[0])
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(tasks)
	}
	printTasks(tasks)
	return nil
}
