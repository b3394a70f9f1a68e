// Summarize command runs tasks through the AI summarizer.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/summarize"
	"github.com/mesh-intelligence/satchel/internal/task"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

var summarizeUpdate bool

var summarizeCmd = &cobra.Command{
	Use:   "summarize [id]",
	Short: "Summarize task(s) with AI",
	Long: `Summarize sends each task's title and notes to the chat completion
API and prints a short-phrase summary. With --update the summary is
appended to the task's notes. Without an ID every task is summarized.

Requires the OPENAI_API_KEY environment variable.

Example:
  satchel summarize
  satchel summarize abc12345 --update`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().BoolVar(&summarizeUpdate, "update", false, "append AI summaries to task notes")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	// A missing credential fails the whole batch up front; per-item API
	// failures below only skip that item.
	client, err := summarize.NewClient(os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		return err
	}

	repo, err := taskRepo()
	if err != nil {
		return err
	}

	var targets []*types.Task
	if len(args) == 1 {
		t, err := repo.Get(args[0])
		if err != nil {
			return err
		}
		targets = []*types.Task{t}
	} else {
		targets, err = repo.List("")
		if err != nil {
			return err
		}
		if len(targets) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}
	}

	summarizeTasks(cmd.Context(), client, repo, targets)
	return nil
}

// summarizeTasks runs the batch. A failed item is reported and the batch
// moves on; no summary means no mutation for that task.
func summarizeTasks(ctx context.Context, s summarize.Summarizer, repo *task.Repo, targets []*types.Task) {
	updated := 0
	for _, t := range targets {
		description := t.Title
		if t.Notes != "" {
			description = t.Title + ". " + t.Notes
		}

		fmt.Printf("\nTask [%s]: %s\n", t.ID, t.Title)
		summary, err := s.Summarize(ctx, description)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate summary: %v\n", err)
			continue
		}
		fmt.Printf("Summary: %s\n", summary)

		if summarizeUpdate {
			if err := repo.AppendSummary(t.ID, summary); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to update task %s: %v\n", t.ID, err)
				continue
			}
			updated++
		}
	}
	if summarizeUpdate && updated > 0 {
		fmt.Printf("\nUpdated %d task(s) with AI summaries.\n", updated)
	}
}
