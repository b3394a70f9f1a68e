// List command shows tasks with optional tag filtering and sorting.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/task"
)

var (
	listTag     string
	listSortBy  string
	listReverse bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List shows all tasks, optionally filtered by tag and sorted.

Sorting by due partitions tasks on due-date validity: valid YYYY-MM-DD
dates sort chronologically, everything else stays at the end.

Example:
  satchel list
  satchel list --tag work --sort-by due
  satchel list --sort-by title --reverse`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listTag, "tag", "", "filter by tag")
	listCmd.Flags().StringVar(&listSortBy, "sort-by", task.SortByCreated, "sort by field (due, created, title, id)")
	listCmd.Flags().BoolVar(&listReverse, "reverse", false, "sort in descending order")
}

func runList(cmd *cobra.Command, args []string) error {
	repo, err := taskRepo()
	if err != nil {
		return err
	}
	tasks, err := repo.List(listTag)
	if err != nil {
		return err
	}
	tasks = task.SortTasks(tasks, listSortBy, listReverse)
	if flagJSON {
		return printJSON(tasks)
	}
	printTasks(tasks)
	return nil
}
