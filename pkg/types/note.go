package types

import "strings"

// Note represents a knowledge-base document. Content is free text and may
// contain markdown. Notes link to other notes and to tasks by ID; both link
// lists are directional.
type Note struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	CreatedAt   string   `json:"created_at"` // fixed TimeLayout, immutable after creation
	UpdatedAt   string   `json:"updated_at"` // advances on every mutating operation
	Tags        []string `json:"tags"`
	LinkedNotes []string `json:"linked_notes"`
	LinkedTasks []string `json:"linked_tasks"`
}

// RecordID returns the note's unique identifier.
func (n *Note) RecordID() string { return n.ID }

// Normalize replaces nil collection fields with empty slices so records
// loaded from older files always serialize as JSON arrays.
func (n *Note) Normalize() {
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if n.LinkedNotes == nil {
		n.LinkedNotes = []string{}
	}
	if n.LinkedTasks == nil {
		n.LinkedTasks = []string{}
	}
}

// Touch advances UpdatedAt to the current time.
func (n *Note) Touch() {
	n.UpdatedAt = Now()
}

// HasTag reports whether tag appears in the note's tag list.
func (n *Note) HasTag(tag string) bool {
	for _, have := range n.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// Matches reports whether the lower-cased query is a substring of the
// note's title or content.
func (n *Note) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

// LinkNote appends targetID to the note's linked notes if absent and
// touches the note. Returns true if the note changed.
func (n *Note) LinkNote(targetID string) bool {
	for _, id := range n.LinkedNotes {
		if id == targetID {
			return false
		}
	}
	n.LinkedNotes = append(n.LinkedNotes, targetID)
	n.Touch()
	return true
}

// LinkTask appends taskID to the note's linked tasks if absent and
// touches the note. Returns true if the note changed.
func (n *Note) LinkTask(taskID string) bool {
	for _, id := range n.LinkedTasks {
		if id == taskID {
			return false
		}
	}
	n.LinkedTasks = append(n.LinkedTasks, taskID)
	n.Touch()
	return true
}

// UnlinkNote removes every occurrence of targetID from the note's linked
// notes. Returns true if the note changed. UpdatedAt is left alone: link
// scrubbing after a deletion is bookkeeping, not an edit.
func (n *Note) UnlinkNote(targetID string) bool {
	changed := false
	kept := n.LinkedNotes[:0]
	for _, id := range n.LinkedNotes {
		if id == targetID {
			changed = true
			continue
		}
		kept = append(kept, id)
	}
	n.LinkedNotes = kept
	return changed
}
