package task

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func dueTask(id, due string) *types.Task {
	return &types.Task{ID: id, Title: id, Due: due}
}

func TestSortByDuePartitions(t *testing.T) {
	tasks := []*types.Task{
		dueTask("late", "2025-11-20"),
		dueTask("none", ""),
		dueTask("early", "2025-11-10"),
		dueTask("junk", "someday"),
	}

	asc := SortTasks(tasks, SortByDue, false)
	assert.Equal(t, []string{"early", "late", "none", "junk"}, ids(asc))

	desc := SortTasks(tasks, SortByDue, true)
	assert.Equal(t, []string{"late", "early", "none", "junk"}, ids(desc),
		"only the valid group reverses; undated tasks stay last in stored order")

	// Input order untouched.
	assert.Equal(t, []string{"late", "none", "early", "junk"}, ids(tasks))
}

func TestSortByTitleCaseInsensitive(t *testing.T) {
	tasks := []*types.Task{
		{ID: "1", Title: "banana"},
		{ID: "2", Title: "Apple"},
		{ID: "3", Title: "cherry"},
	}

	asc := SortTasks(tasks, SortByTitle, false)
	assert.Equal(t, []string{"2", "1", "3"}, ids(asc))

	desc := SortTasks(tasks, SortByTitle, true)
	assert.Equal(t, []string{"3", "1", "2"}, ids(desc))
}

func TestSortByCreated(t *testing.T) {
	tasks := []*types.Task{
		{ID: "b", CreatedAt: "2025-06-02 00:00:00 UTC"},
		{ID: "a", CreatedAt: "2025-06-01 00:00:00 UTC"},
		{ID: "c", CreatedAt: "2025-06-03 00:00:00 UTC"},
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(SortTasks(tasks, SortByCreated, false)))
	assert.Equal(t, []string{"c", "b", "a"}, ids(SortTasks(tasks, SortByCreated, true)))
}

func TestSortByID(t *testing.T) {
	tasks := []*types.Task{
		{ID: "cc"}, {ID: "aa"}, {ID: "bb"},
	}
	assert.Equal(t, []string{"aa", "bb", "cc"}, ids(SortTasks(tasks, SortByID, false)))
}

func TestSortUnknownKeyFallsBackToCreated(t *testing.T) {
	tasks := []*types.Task{
		{ID: "b", CreatedAt: "2025-06-02 00:00:00 UTC"},
		{ID: "a", CreatedAt: "2025-06-01 00:00:00 UTC"},
	}
	assert.Equal(t, []string{"a", "b"}, ids(SortTasks(tasks, "bogus", false)))
}
