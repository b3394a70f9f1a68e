package task

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Sort keys accepted by SortTasks.
const (
	SortByDue     = "due"
	SortByCreated = "created"
	SortByTitle   = "title"
	SortByID      = "id"
)

// SortTasks returns a sorted copy of tasks. The input slice is not
// reordered. An unrecognized key falls back to created order.
//
// Key "due" partitions on due-date validity: tasks whose due parses as
// YYYY-MM-DD sort ascending by the raw string (lexicographic order equals
// chronological order for the fixed-width format); tasks with an invalid
// or absent due always come last, in their stored relative order. When
// descending, only the valid group reverses; the invalid group's position
// and internal order are unaffected.
//
// "title" compares case-insensitively; "created" and "id" compare the raw
// string.
func SortTasks(tasks []*types.Task, key string, descending bool) []*types.Task {
	out := make([]*types.Task, len(tasks))
	copy(out, tasks)

	if key == SortByDue {
		valid := []*types.Task{}
		invalid := []*types.Task{}
		for _, t := range out {
			if types.ValidDue(t.Due) {
				valid = append(valid, t)
			} else {
				invalid = append(invalid, t)
			}
		}
		sort.SliceStable(valid, func(i, j int) bool { return valid[i].Due < valid[j].Due })
		if descending {
			for i, j := 0, len(valid)-1; i < j; i, j = i+1, j-1 {
				valid[i], valid[j] = valid[j], valid[i]
			}
		}
		return append(valid, invalid...)
	}

	var less func(a, b *types.Task) bool
	switch key {
	case SortByTitle:
		less = func(a, b *types.Task) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortByID:
		less = func(a, b *types.Task) bool { return a.ID < b.ID }
	default:
		less = func(a, b *types.Task) bool { return a.CreatedAt < b.CreatedAt }
	}

	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
