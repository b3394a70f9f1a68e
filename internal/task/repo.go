// Package task implements the task repository: CRUD, linking, subtask
// hierarchy, importance flags, search, and deletion over a JSON file store.
// Every operation is a full cycle: load the collection, mutate the snapshot,
// persist if anything changed. There is no in-process cache; two concurrent
// invocations racing on the same file exhibit last-writer-wins.
package task

import (
	"fmt"

	"github.com/mesh-intelligence/satchel/internal/identity"
	"github.com/mesh-intelligence/satchel/internal/store"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Repo provides task operations over a single JSON data file.
type Repo struct {
	store *store.Store[*types.Task]
}

// NewRepo returns a Repo backed by the given file path.
func NewRepo(path string) *Repo {
	return &Repo{store: store.New[*types.Task](path)}
}

// Path returns the backing data file path.
func (r *Repo) Path() string { return r.store.Path() }

// NewTask carries the caller-supplied fields for Add.
type NewTask struct {
	Title     string
	Notes     string
	Due       string // free-form; not validated at write time
	Tags      []string
	CustomID  string // optional; must be unique if set
	Important bool
}

// Add creates a task and persists it. When CustomID is empty an 8-character
// hex ID is generated; a CustomID that collides with an existing task
// returns ErrDuplicateID and leaves the collection untouched.
func (r *Repo) Add(nt NewTask) (*types.Task, error) {
	if nt.Title == "" {
		return nil, types.ErrTitleEmpty
	}
	tasks, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	id := nt.CustomID
	if id != "" {
		if identity.Exists(id, tasks) {
			return nil, fmt.Errorf("task ID %q: %w", id, types.ErrDuplicateID)
		}
	} else {
		id = identity.NewID()
	}

	t := &types.Task{
		ID:        id,
		Title:     nt.Title,
		Notes:     nt.Notes,
		CreatedAt: types.Now(),
		Due:       nt.Due,
		Tags:      nt.Tags,
		Links:     []string{},
		Important: nt.Important,
		Subtasks:  []string{},
	}
	t.Normalize()

	tasks = append(tasks, t)
	if err := r.store.Save(tasks); err != nil {
		return nil, err
	}
	return t, nil
}

// Find returns the task with the given ID from a loaded collection, or nil.
// Linear scan; reused by every other operation.
func Find(id string, tasks []*types.Task) *types.Task {
	for _, t := range tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Get returns the task with the given ID or ErrNotFound.
func (r *Repo) Get(id string) (*types.Task, error) {
	tasks, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	t := Find(id, tasks)
	if t == nil {
		return nil, fmt.Errorf("task %q: %w", id, types.ErrNotFound)
	}
	return t, nil
}

// List returns all tasks, filtered to those carrying tag when tag is
// non-empty. The returned slice is a disposable snapshot; mutations are
// not visible to later calls unless persisted.
func (r *Repo) List(tag string) ([]*types.Task, error) {
	tasks, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return tasks, nil
	}
	return FilterByTag(tasks, tag), nil
}

// Exists reports whether a task with the given ID is stored. This is the
// narrow check the note repository consumes.
func (r *Repo) Exists(id string) (bool, error) {
	tasks, err := r.store.Load()
	if err != nil {
		return false, err
	}
	return identity.Exists(id, tasks), nil
}

// Link records a directional link from source to target. Idempotent; no
// reciprocal link is created. Returns ErrNotFound if either ID is absent.
func (r *Repo) Link(sourceID, targetID string) error {
	tasks, err := r.store.Load()
	if err != nil {
		return err
	}
	src := Find(sourceID, tasks)
	tgt := Find(targetID, tasks)
	if src == nil || tgt == nil {
		return fmt.Errorf("linking %q -> %q: %w", sourceID, targetID, types.ErrNotFound)
	}
	if src.AddLink(targetID) {
		return r.store.Save(tasks)
	}
	return nil
}

// AddSubtask links an existing task as a child of parent. Both IDs must
// resolve. Idempotent; a child may have any number of parents and no cycle
// check is performed. Returns the subtask on success.
func (r *Repo) AddSubtask(parentID, subtaskID string) (*types.Task, error) {
	tasks, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	parent := Find(parentID, tasks)
	if parent == nil {
		return nil, fmt.Errorf("parent task %q: %w", parentID, types.ErrNotFound)
	}
	sub := Find(subtaskID, tasks)
	if sub == nil {
		return nil, fmt.Errorf("subtask %q: %w", subtaskID, types.ErrNotFound)
	}
	if parent.AddSubtask(subtaskID) {
		if err := r.store.Save(tasks); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// Subtasks returns the resolved child tasks of parent, skipping IDs that
// no longer resolve (a cascade-less delete elsewhere may have left them
// dangling).
func (r *Repo) Subtasks(parentID string) ([]*types.Task, error) {
	tasks, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	parent := Find(parentID, tasks)
	if parent == nil {
		return nil, fmt.Errorf("parent task %q: %w", parentID, types.ErrNotFound)
	}
	subs := make([]*types.Task, 0, len(parent.Subtasks))
	for _, sid := range parent.Subtasks {
		if s := Find(sid, tasks); s != nil {
			subs = append(subs, s)
		}
	}
	return subs, nil
}

// MarkImportant flags a task as important. Persists only when the flag
// actually flips. Returns ErrNotFound if the ID is absent.
func (r *Repo) MarkImportant(id string) error {
	return r.setImportant(id, true)
}

// UnmarkImportant clears a task's important flag. Persists only when the
// flag actually flips. Returns ErrNotFound if the ID is absent.
func (r *Repo) UnmarkImportant(id string) error {
	return r.setImportant(id, false)
}

func (r *Repo) setImportant(id string, important bool) error {
	tasks, err := r.store.Load()
	if err != nil {
		return err
	}
	t := Find(id, tasks)
	if t == nil {
		return fmt.Errorf("task %q: %w", id, types.ErrNotFound)
	}
	if t.Important == important {
		return nil
	}
	t.Important = important
	return r.store.Save(tasks)
}

// Important returns the tasks flagged as important.
func (r *Repo) Important() ([]*types.Task, error) {
	tasks, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	flagged := []*types.Task{}
	for _, t := range tasks {
		if t.Important {
			flagged = append(flagged, t)
		}
	}
	return flagged, nil
}

// Search returns tasks whose title or notes contain query,
// case-insensitively.
func (r *Repo) Search(query string) ([]*types.Task, error) {
	tasks, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	return SearchTasks(tasks, query), nil
}

// SearchByTags returns tasks matching the given tags. With matchAll false
// a task needs at least one of the tags; with matchAll true it needs every
// one. Tag order and duplicates in the query are irrelevant.
func (r *Repo) SearchByTags(tags []string, matchAll bool) ([]*types.Task, error) {
	tasks, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	return FilterByTags(tasks, tags, matchAll), nil
}

// AllTags returns every tag in use with its usage count, sorted
// lexicographically by tag.
func (r *Repo) AllTags() ([]TagCount, error) {
	tasks, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	return CountTags(tasks), nil
}

// AppendSummary appends a generated summary to the task's notes and
// persists. Returns ErrNotFound if the ID is absent.
func (r *Repo) AppendSummary(id, summary string) error {
	tasks, err := r.store.Load()
	if err != nil {
		return err
	}
	t := Find(id, tasks)
	if t == nil {
		return fmt.Errorf("task %q: %w", id, types.ErrNotFound)
	}
	t.AppendSummary(summary)
	return r.store.Save(tasks)
}
