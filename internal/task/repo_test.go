package task

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	return NewRepo(filepath.Join(t.TempDir(), "tasks.json"))
}

func TestAddGeneratesShortID(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.Add(NewTask{Title: "Buy milk"})
	require.NoError(t, err)

	assert.Regexp(t, `^[0-9a-f]{8}$`, created.ID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.NotEmpty(t, created.CreatedAt)
	assert.NotNil(t, created.Tags)
	assert.NotNil(t, created.Links)
	assert.NotNil(t, created.Subtasks)
}

func TestAddEmptyTitleRejected(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Add(NewTask{})
	assert.ErrorIs(t, err, types.ErrTitleEmpty)
}

func TestAddCustomID(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.Add(NewTask{Title: "custom", CustomID: "my-task"})
	require.NoError(t, err)
	assert.Equal(t, "my-task", created.ID)
}

func TestAddDuplicateCustomID(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Add(NewTask{Title: "first", CustomID: "dup"})
	require.NoError(t, err)

	_, err = repo.Add(NewTask{Title: "second", CustomID: "dup"})
	assert.ErrorIs(t, err, types.ErrDuplicateID)

	// Exactly one task with that ID; the failed add mutated nothing.
	all, err := repo.List("")
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "first", all[0].Title)
}

func TestGetNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get("missing1")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestLink(t *testing.T) {
	repo := newTestRepo(t)

	src, err := repo.Add(NewTask{Title: "source"})
	require.NoError(t, err)
	tgt, err := repo.Add(NewTask{Title: "target"})
	require.NoError(t, err)

	require.NoError(t, repo.Link(src.ID, tgt.ID))
	require.NoError(t, repo.Link(src.ID, tgt.ID), "second link is a no-op")

	got, err := repo.Get(src.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{tgt.ID}, got.Links)

	// No reciprocal link.
	back, err := repo.Get(tgt.ID)
	require.NoError(t, err)
	assert.Empty(t, back.Links)
}

func TestLinkNotFound(t *testing.T) {
	repo := newTestRepo(t)

	src, err := repo.Add(NewTask{Title: "source"})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Link(src.ID, "missing1"), types.ErrNotFound)
	assert.ErrorIs(t, repo.Link("missing1", src.ID), types.ErrNotFound)
}

func TestAddSubtaskIdempotent(t *testing.T) {
	repo := newTestRepo(t)

	parent, err := repo.Add(NewTask{Title: "parent"})
	require.NoError(t, err)
	child, err := repo.Add(NewTask{Title: "child"})
	require.NoError(t, err)

	_, err = repo.AddSubtask(parent.ID, child.ID)
	require.NoError(t, err)
	_, err = repo.AddSubtask(parent.ID, child.ID)
	require.NoError(t, err)

	got, err := repo.Get(parent.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{child.ID}, got.Subtasks, "child appears exactly once")
}

func TestAddSubtaskNotFound(t *testing.T) {
	repo := newTestRepo(t)

	parent, err := repo.Add(NewTask{Title: "parent"})
	require.NoError(t, err)

	_, err = repo.AddSubtask(parent.ID, "missing1")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = repo.AddSubtask("missing1", parent.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSubtasksSkipsDangling(t *testing.T) {
	repo := newTestRepo(t)

	parent, err := repo.Add(NewTask{Title: "parent"})
	require.NoError(t, err)
	child, err := repo.Add(NewTask{Title: "child"})
	require.NoError(t, err)
	_, err = repo.AddSubtask(parent.ID, child.ID)
	require.NoError(t, err)

	// Deleting the child elsewhere leaves a dangling subtask reference.
	require.NoError(t, repo.Delete(child.ID, false))

	subs, err := repo.Subtasks(parent.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestMarkUnmarkImportant(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.Add(NewTask{Title: "task"})
	require.NoError(t, err)

	require.NoError(t, repo.MarkImportant(created.ID))
	require.NoError(t, repo.MarkImportant(created.ID), "idempotent")

	flagged, err := repo.Important()
	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, created.ID, flagged[0].ID)

	require.NoError(t, repo.UnmarkImportant(created.ID))
	flagged, err = repo.Important()
	require.NoError(t, err)
	assert.Empty(t, flagged)

	assert.ErrorIs(t, repo.MarkImportant("missing1"), types.ErrNotFound)
}

func TestListWithTag(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Add(NewTask{Title: "home task", Tags: []string{"home"}})
	require.NoError(t, err)
	_, err = repo.Add(NewTask{Title: "work task", Tags: []string{"work"}})
	require.NoError(t, err)

	all, err := repo.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	home, err := repo.List("home")
	require.NoError(t, err)
	require.Len(t, home, 1)
	assert.Equal(t, "home task", home[0].Title)
}

func TestSearchCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Add(NewTask{Title: "Buy milk"})
	require.NoError(t, err)
	_, err = repo.Add(NewTask{Title: "Walk dog"})
	require.NoError(t, err)

	upper, err := repo.Search("MILK")
	require.NoError(t, err)
	lower, err := repo.Search("milk")
	require.NoError(t, err)

	require.Len(t, upper, 1)
	require.Len(t, lower, 1)
	assert.Equal(t, upper[0].ID, lower[0].ID)
}

func TestAppendSummary(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.Add(NewTask{Title: "task", Notes: "details"})
	require.NoError(t, err)

	require.NoError(t, repo.AppendSummary(created.ID, "a phrase"))

	got, err := repo.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "details\n\nAI Summary: a phrase", got.Notes)

	assert.ErrorIs(t, repo.AppendSummary("missing1", "x"), types.ErrNotFound)
}

func TestExists(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.Add(NewTask{Title: "task"})
	require.NoError(t, err)

	ok, err := repo.Exists(created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists("missing1")
	require.NoError(t, err)
	assert.False(t, ok)
}
