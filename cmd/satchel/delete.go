// Delete command removes a task, resolving the subtask policy first.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	deleteCascade bool
	deleteOrphan  bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Long: `Delete removes a task. When the task has subtasks the policy must
be resolved first: --cascade removes the subtasks too, --orphan leaves them
as ordinary top-level tasks, and with neither flag an interactive prompt
asks for the choice. Cancelling leaves everything untouched.

Example:
  satchel delete abc12345
  satchel delete abc12345 --cascade
  satchel delete abc12345 --orphan`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteCascade, "cascade", false, "delete subtasks along with the task")
	deleteCmd.Flags().BoolVar(&deleteOrphan, "orphan", false, "keep subtasks as top-level tasks")
	deleteCmd.MarkFlagsMutuallyExclusive("cascade", "orphan")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]
	repo, err := taskRepo()
	if err != nil {
		return err
	}

	// The repository only accepts a resolved policy; the interactive
	// choice happens here, before any mutation.
	cascade := deleteCascade
	if !deleteCascade && !deleteOrphan {
		t, err := repo.Get(id)
		if err != nil {
			return err
		}
		if len(t.Subtasks) > 0 {
			choice, err := promptSubtaskChoice(t.Title, len(t.Subtasks))
			if err != nil {
				return err
			}
			cascade = choice
		}
	}

	if err := repo.Delete(id, cascade); err != nil {
		return err
	}
	fmt.Printf("Deleted task %s\n", id)
	return nil
}

// promptSubtaskChoice asks whether subtasks should be deleted too.
// Returns errCancelled when the user backs out.
func promptSubtaskChoice(title string, count int) (bool, error) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("Task '%s' has %d subtask(s). Delete them too? (yes/no/cancel): ", title, count)
		line, err := reader.ReadString('\n')
		if err != nil {
			// Closed stdin counts as a cancel; nothing has mutated yet.
			return false, errCancelled
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		case "cancel", "c":
			return false, errCancelled
		default:
			fmt.Println("Please enter 'yes', 'no', or 'cancel'.")
		}
	}
}
