// Package note implements the note repository for the knowledge-base side
// of satchel: CRUD, note-to-note and note-to-task links, search, and
// deletion with full reference cleanup. It mirrors the task repository's
// load-mutate-persist cycle over its own JSON file, and depends on the
// task side only through the narrow TaskChecker interface.
package note

import (
	"fmt"

	"github.com/mesh-intelligence/satchel/internal/identity"
	"github.com/mesh-intelligence/satchel/internal/store"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// TaskChecker is the task-existence check consumed when linking a note to
// a task. The task repository satisfies it.
type TaskChecker interface {
	Exists(id string) (bool, error)
}

// Repo provides note operations over a single JSON data file.
type Repo struct {
	store *store.Store[*types.Note]
	tasks TaskChecker
}

// NewRepo returns a Repo backed by the given file path. tasks may be nil
// when task linking is not needed; LinkToTask then fails closed.
func NewRepo(path string, tasks TaskChecker) *Repo {
	return &Repo{store: store.New[*types.Note](path), tasks: tasks}
}

// Path returns the backing data file path.
func (r *Repo) Path() string { return r.store.Path() }

// Create adds a note and persists it. CreatedAt and UpdatedAt start equal.
// A custom ID that collides with an existing note returns ErrDuplicateID
// and leaves the collection untouched.
func (r *Repo) Create(title, content string, tags []string, customID string) (*types.Note, error) {
	if title == "" {
		return nil, types.ErrTitleEmpty
	}
	notes, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	id := customID
	if id != "" {
		if identity.Exists(id, notes) {
			return nil, fmt.Errorf("note ID %q: %w", id, types.ErrDuplicateID)
		}
	} else {
		id = identity.NewID()
	}

	now := types.Now()
	n := &types.Note{
		ID:          id,
		Title:       title,
		Content:     content,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tags:        tags,
		LinkedNotes: []string{},
		LinkedTasks: []string{},
	}
	n.Normalize()

	notes = append(notes, n)
	if err := r.store.Save(notes); err != nil {
		return nil, err
	}
	return n, nil
}

func find(id string, notes []*types.Note) *types.Note {
	for _, n := range notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Get returns the note with the given ID or ErrNotFound.
func (r *Repo) Get(id string) (*types.Note, error) {
	notes, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	n := find(id, notes)
	if n == nil {
		return nil, fmt.Errorf("note %q: %w", id, types.ErrNotFound)
	}
	return n, nil
}

// List returns all notes, filtered to those carrying tag when tag is
// non-empty.
func (r *Repo) List(tag string) ([]*types.Note, error) {
	notes, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return notes, nil
	}
	out := []*types.Note{}
	for _, n := range notes {
		if n.HasTag(tag) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Search returns notes whose title or content contain query,
// case-insensitively.
func (r *Repo) Search(query string) ([]*types.Note, error) {
	notes, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	out := []*types.Note{}
	for _, n := range notes {
		if n.Matches(query) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Edit replaces the provided fields on a note. A nil pointer leaves the
// field alone; a nil tags slice leaves tags alone, otherwise tags are
// overwritten wholesale, not merged. UpdatedAt advances on every
// successful edit, even when the new value equals the old one.
func (r *Repo) Edit(id string, title, content *string, tags []string) error {
	notes, err := r.store.Load()
	if err != nil {
		return err
	}
	n := find(id, notes)
	if n == nil {
		return fmt.Errorf("note %q: %w", id, types.ErrNotFound)
	}

	if title != nil {
		n.Title = *title
	}
	if content != nil {
		n.Content = *content
	}
	if tags != nil {
		n.Tags = tags
	}
	n.Touch()
	return r.store.Save(notes)
}

// LinkToNote records a directional link from one note to another.
// Idempotent; advances the source's UpdatedAt only when the link is new.
// Returns ErrNotFound if either note is absent.
func (r *Repo) LinkToNote(sourceID, targetID string) error {
	notes, err := r.store.Load()
	if err != nil {
		return err
	}
	src := find(sourceID, notes)
	tgt := find(targetID, notes)
	if src == nil || tgt == nil {
		return fmt.Errorf("linking note %q -> %q: %w", sourceID, targetID, types.ErrNotFound)
	}
	if src.LinkNote(targetID) {
		return r.store.Save(notes)
	}
	return nil
}

// LinkToTask records a link from a note to a task. The note must exist
// here and the task must exist in the task repository; the task side is
// validated at link time only. Idempotent.
func (r *Repo) LinkToTask(noteID, taskID string) error {
	notes, err := r.store.Load()
	if err != nil {
		return err
	}
	n := find(noteID, notes)
	if n == nil {
		return fmt.Errorf("note %q: %w", noteID, types.ErrNotFound)
	}
	if r.tasks == nil {
		return fmt.Errorf("task %q: %w", taskID, types.ErrNotFound)
	}
	ok, err := r.tasks.Exists(taskID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("task %q: %w", taskID, types.ErrNotFound)
	}
	if n.LinkTask(taskID) {
		return r.store.Save(notes)
	}
	return nil
}

// Delete removes a note and strips its ID out of every remaining note's
// linked notes, so no dangling note references survive. The removal and
// the reference cleanup land in one persisted write; the end state is the
// same either way in this single-process, synchronous flow.
func (r *Repo) Delete(id string) error {
	notes, err := r.store.Load()
	if err != nil {
		return err
	}
	if find(id, notes) == nil {
		return fmt.Errorf("note %q: %w", id, types.ErrNotFound)
	}

	kept := notes[:0]
	for _, n := range notes {
		if n.ID == id {
			continue
		}
		n.UnlinkNote(id)
		kept = append(kept, n)
	}
	return r.store.Save(kept)
}
