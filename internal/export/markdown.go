// Package export renders notes to markdown files. It consumes notes
// read-only; all storage access stays behind the note repository.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// SafeFilename converts a note title to a filesystem-safe markdown
// filename: alphanumerics, dashes, and underscores survive, spaces become
// underscores, everything else becomes an underscore.
func SafeFilename(title string) string {
	var b strings.Builder
	for _, c := range title {
		switch {
		case c == ' ':
			b.WriteByte('_')
		case c == '-' || c == '_':
			b.WriteRune(c)
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + ".md"
}

// NoteMarkdown renders a single note as a markdown document. The full
// collection is consulted to resolve linked note titles; unresolvable
// links are rendered as not found rather than dropped.
func NoteMarkdown(n *types.Note, all []*types.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", n.Title)
	fmt.Fprintf(&b, "**ID:** %s  \n", n.ID)
	fmt.Fprintf(&b, "**Created:** %s  \n", n.CreatedAt)
	fmt.Fprintf(&b, "**Updated:** %s  \n", n.UpdatedAt)
	if len(n.Tags) > 0 {
		tagged := make([]string, len(n.Tags))
		for i, tag := range n.Tags {
			tagged[i] = "`" + tag + "`"
		}
		fmt.Fprintf(&b, "**Tags:** %s  \n", strings.Join(tagged, ", "))
	}
	b.WriteString("\n")

	if len(n.LinkedNotes) > 0 || len(n.LinkedTasks) > 0 {
		b.WriteString("## Links\n\n")
		if len(n.LinkedNotes) > 0 {
			b.WriteString("**Linked Notes:**\n")
			for _, id := range n.LinkedNotes {
				if linked := findNote(id, all); linked != nil {
					fmt.Fprintf(&b, "- [%s](#%s) (`%s`)\n", linked.Title, id, id)
				} else {
					fmt.Fprintf(&b, "- `%s` (not found)\n", id)
				}
			}
			b.WriteString("\n")
		}
		if len(n.LinkedTasks) > 0 {
			b.WriteString("**Linked Tasks:**\n")
			for _, id := range n.LinkedTasks {
				fmt.Fprintf(&b, "- Task `%s`\n", id)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Content\n\n")
	b.WriteString(n.Content)
	b.WriteString("\n\n---\n")
	fmt.Fprintf(&b, "*Generated from note %s on %s*\n", n.ID, types.Now())
	return b.String()
}

func findNote(id string, notes []*types.Note) *types.Note {
	for _, n := range notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Note writes one note as markdown to outputPath. When outputPath is
// empty, a filename derived from the note title is used in the current
// directory.
func Note(n *types.Note, all []*types.Note, outputPath string) error {
	if outputPath == "" {
		outputPath = SafeFilename(n.Title)
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(NoteMarkdown(n, all)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}

// All writes every note to dir as markdown plus an INDEX.md grouping the
// notes by tag. Returns the number of notes exported.
func All(notes []*types.Note, dir string) (int, error) {
	if len(notes) == 0 {
		return 0, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dir, err)
	}

	var index strings.Builder
	index.WriteString("# Notes Index\n\n")
	fmt.Fprintf(&index, "Generated on %s\n\n", types.Now())
	fmt.Fprintf(&index, "Total notes: %d\n\n", len(notes))

	byTag := map[string][]*types.Note{}
	for _, n := range notes {
		for _, tag := range n.Tags {
			byTag[tag] = append(byTag[tag], n)
		}
	}
	if len(byTag) > 0 {
		index.WriteString("## Notes by Tag\n\n")
		tags := make([]string, 0, len(byTag))
		for tag := range byTag {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		for _, tag := range tags {
			fmt.Fprintf(&index, "### %s\n\n", tag)
			for _, n := range byTag[tag] {
				fmt.Fprintf(&index, "- [%s](%s) (`%s`)\n", n.Title, SafeFilename(n.Title), n.ID)
			}
			index.WriteString("\n")
		}
	}

	index.WriteString("## All Notes\n\n")
	count := 0
	for _, n := range notes {
		name := SafeFilename(n.Title)
		if err := Note(n, notes, filepath.Join(dir, name)); err != nil {
			return count, err
		}
		count++
		fmt.Fprintf(&index, "- [%s](%s) - %s\n", n.Title, name, n.CreatedAt)
		if len(n.Tags) > 0 {
			tagged := make([]string, len(n.Tags))
			for i, tag := range n.Tags {
				tagged[i] = "`" + tag + "`"
			}
			fmt.Fprintf(&index, "  - Tags: %s\n", strings.Join(tagged, ", "))
		}
	}

	indexPath := filepath.Join(dir, "INDEX.md")
	if err := os.WriteFile(indexPath, []byte(index.String()), 0o644); err != nil {
		return count, fmt.Errorf("writing %s: %w", indexPath, err)
	}
	return count, nil
}
