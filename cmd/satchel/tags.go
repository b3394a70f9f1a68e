// Tags commands: usage counts and tag-based search.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags and their usage counts",
	RunE:  runTags,
}

func runTags(cmd *cobra.Command, args []string) error {
	repo, err := taskRepo()
	if err != nil {
		return err
	}
	counts, err := repo.AllTags()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(counts)
	}
	if len(counts) == 0 {
		fmt.Println("No tags found.")
		return nil
	}
	fmt.Println("Tags:")
	for _, tc := range counts {
		fmt.Printf("  %s: %d task(s)\n", tc.Tag, tc.Count)
	}
	return nil
}

var searchTagsAll bool

var searchTagsCmd = &cobra.Command{
	Use:   "search-tags <tag>...",
	Short: "Search tasks by one or more tags",
	Long: `Search-tags finds tasks carrying the given tags. By default a task
matches when it has any of the tags; with --all it must have every one.

Example:
  satchel search-tags home work
  satchel search-tags home work --all`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchTags,
}

func init() {
	searchTagsCmd.Flags().BoolVar(&searchTagsAll, "all", false, "match tasks with ALL specified tags (default: ANY)")
}

func runSearchTags(cmd *cobra.Command, args []string) error {
	repo, err := taskRepo()
	if err != nil {
		return err
	}
	tasks, err := repo.SearchByTags(args, searchTagsAll)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(tasks)
	}
	mode := "any"
	if searchTagsAll {
		mode = "all"
	}
	if len(tasks) == 0 {
		fmt.Printf("No tasks found with %s of: %s\n", mode, strings.Join(args, ", "))
		return nil
	}
	fmt.Printf("Found %d task(s) with %s of: %s\n", len(tasks), mode, strings.Join(args, ", "))
	printTasks(tasks)
	return nil
}
