// Shared output helpers for satchel CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// ANSI color codes used by the human-readable output.
const (
	colorImportant = "\033[93m"
	colorTitle     = "\033[92m"
	colorLabel     = "\033[33m"
	colorReset     = "\033[0m"
)

// color wraps s in the given ANSI code unless --plain is set.
func color(code, s string) string {
	if flagPlain {
		return s
	}
	return code + s + colorReset
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printTask writes one task in the list format.
func printTask(t *types.Task) {
	prefix := ""
	if t.Important {
		prefix = color(colorImportant, "Important:") + " "
	}
	fmt.Printf("- %s[%s] %s\n", prefix, t.ID, color(colorTitle, t.Title))
	if t.Notes != "" {
		fmt.Printf("    Notes: %s\n", t.Notes)
	}
	if t.Due != "" {
		fmt.Printf("    Due: %s\n", t.Due)
	}
	if len(t.Tags) > 0 {
		fmt.Printf("    Tags: %s\n", strings.Join(t.Tags, ", "))
	}
	if len(t.Links) > 0 {
		fmt.Println("    Linked tasks:")
		for _, id := range t.Links {
			fmt.Printf("      - [%s] view: satchel show %s\n", id, id)
		}
	}
	if len(t.Subtasks) > 0 {
		fmt.Printf("    %s %d subtask(s) - run: satchel show-subtasks %s\n",
			color(colorLabel, "Subtasks:"), len(t.Subtasks), t.ID)
	}
	fmt.Printf("    Created: %s\n", t.CreatedAt)
}

// printTasks writes a task list, or a placeholder when empty.
func printTasks(tasks []*types.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return
	}
	for _, t := range tasks {
		printTask(t)
	}
}

// printNotes writes a compact note list with a content preview.
func printNotes(notes []*types.Note) {
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return
	}
	for _, n := range notes {
		line := fmt.Sprintf("%s | %s", n.ID, n.Title)
		if len(n.Tags) > 0 {
			line += fmt.Sprintf(" [%s]", strings.Join(n.Tags, ", "))
		}
		if len(n.LinkedNotes) > 0 {
			line += fmt.Sprintf(" ->%d notes", len(n.LinkedNotes))
		}
		if len(n.LinkedTasks) > 0 {
			line += fmt.Sprintf(" ->%d tasks", len(n.LinkedTasks))
		}
		fmt.Println(line)

		preview := n.Content
		if len(preview) > 80 {
			preview = preview[:80] + "..."
		}
		if preview != "" {
			fmt.Printf("  %s\n", strings.ReplaceAll(preview, "\n", " "))
		}
	}
}
