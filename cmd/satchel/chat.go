// Chat command runs an interactive summarization loop.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/summarize"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive AI chat for task description summarization",
	Long: `Chat reads task descriptions from stdin and prints short-phrase
summaries. Type 'quit' to exit.

Requires the OPENAI_API_KEY environment variable.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	client, err := summarize.NewClient(os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\nEnter a task description (or 'quit' to exit):")
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nEOF received. Exiting.")
			return nil
		}
		description := strings.TrimSpace(line)
		if strings.EqualFold(description, "quit") {
			return nil
		}
		if description == "" {
			fmt.Println("Please enter a task description.")
			continue
		}

		fmt.Println("Processing...")
		summary, err := client.Summarize(cmd.Context(), description)
		if err != nil {
			// Per-item failure; the loop continues.
			fmt.Fprintf(os.Stderr, "Error calling API: %v\n", err)
			continue
		}
		fmt.Println("\nSummary:")
		fmt.Println(summary)
	}
}
