package types

import "strings"

// Task represents a single work item. Tasks reference each other by ID:
// Links are directional edges created by the link operation, and Subtasks
// lists the IDs of child tasks. There is no reverse parent field; parentage
// is reconstructed by scanning every task's Subtasks list.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Notes     string   `json:"notes"`
	CreatedAt string   `json:"created_at"` // fixed TimeLayout, immutable after creation
	Due       string   `json:"due"`        // free-form; validated only at sort time
	Tags      []string `json:"tags"`
	Links     []string `json:"links"`
	Important bool     `json:"important"`
	Subtasks  []string `json:"subtasks"`
}

// RecordID returns the task's unique identifier.
func (t *Task) RecordID() string { return t.ID }

// Normalize replaces nil collection fields with empty slices so records
// loaded from older files always serialize as JSON arrays.
func (t *Task) Normalize() {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.Links == nil {
		t.Links = []string{}
	}
	if t.Subtasks == nil {
		t.Subtasks = []string{}
	}
}

// HasTag reports whether tag appears in the task's tag list.
func (t *Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// Matches reports whether the lower-cased query is a substring of the
// task's title or notes. Empty notes never match.
func (t *Task) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	return t.Notes != "" && strings.Contains(strings.ToLower(t.Notes), q)
}

// AddLink appends targetID to the task's links if absent.
// Returns true if the task changed.
func (t *Task) AddLink(targetID string) bool {
	for _, id := range t.Links {
		if id == targetID {
			return false
		}
	}
	t.Links = append(t.Links, targetID)
	return true
}

// AddSubtask appends subtaskID to the task's subtasks if absent.
// Returns true if the task changed.
func (t *Task) AddSubtask(subtaskID string) bool {
	for _, id := range t.Subtasks {
		if id == subtaskID {
			return false
		}
	}
	t.Subtasks = append(t.Subtasks, subtaskID)
	return true
}

// AppendSummary concatenates a generated summary onto the task's notes,
// separated from any existing notes by a blank line.
func (t *Task) AppendSummary(summary string) {
	if t.Notes != "" {
		t.Notes = t.Notes + "\n\nAI Summary: " + summary
	} else {
		t.Notes = "AI Summary: " + summary
	}
}
