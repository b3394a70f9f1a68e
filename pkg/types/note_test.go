package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const staleTime = "2020-01-01 00:00:00 UTC"

func TestNoteLinkNote(t *testing.T) {
	n := Note{ID: "a", UpdatedAt: staleTime}

	assert.True(t, n.LinkNote("b"))
	assert.Equal(t, []string{"b"}, n.LinkedNotes)
	assert.NotEqual(t, staleTime, n.UpdatedAt, "UpdatedAt advances on a new link")

	n.UpdatedAt = staleTime
	assert.False(t, n.LinkNote("b"), "duplicate link is a no-op")
	assert.Equal(t, staleTime, n.UpdatedAt, "no-op must not touch UpdatedAt")
}

func TestNoteLinkTask(t *testing.T) {
	n := Note{ID: "a", UpdatedAt: staleTime}

	assert.True(t, n.LinkTask("task1"))
	assert.False(t, n.LinkTask("task1"))
	assert.Equal(t, []string{"task1"}, n.LinkedTasks)
	assert.NotEqual(t, staleTime, n.UpdatedAt)
}

func TestNoteUnlinkNote(t *testing.T) {
	n := Note{
		LinkedNotes: []string{"a", "b", "a", "c"},
		UpdatedAt:   staleTime,
	}

	assert.True(t, n.UnlinkNote("a"))
	assert.Equal(t, []string{"b", "c"}, n.LinkedNotes, "every occurrence removed")
	assert.Equal(t, staleTime, n.UpdatedAt, "reference scrubbing is not an edit")

	assert.False(t, n.UnlinkNote("missing"))
}

func TestNoteMatches(t *testing.T) {
	tests := []struct {
		name  string
		note  Note
		query string
		want  bool
	}{
		{"title match", Note{Title: "Shopping list"}, "SHOP", true},
		{"content match", Note{Title: "x", Content: "# Markdown heading"}, "markdown", true},
		{"no match", Note{Title: "x", Content: "y"}, "z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.note.Matches(tt.query))
		})
	}
}

func TestNoteNormalize(t *testing.T) {
	n := Note{ID: "x", Title: "bare"}
	n.Normalize()

	assert.NotNil(t, n.Tags)
	assert.NotNil(t, n.LinkedNotes)
	assert.NotNil(t, n.LinkedTasks)
}
