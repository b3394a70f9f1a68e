package task

import (
	"sort"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Query helpers operate on in-memory snapshots produced by the repository.
// They never touch the store.

// FilterByTag returns the tasks carrying the exact tag string.
func FilterByTag(tasks []*types.Task, tag string) []*types.Task {
	out := []*types.Task{}
	for _, t := range tasks {
		if t.HasTag(tag) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByTags returns tasks matching the given tags: every tag when
// matchAll, at least one otherwise.
func FilterByTags(tasks []*types.Task, tags []string, matchAll bool) []*types.Task {
	out := []*types.Task{}
	for _, t := range tasks {
		if matchesTags(t, tags, matchAll) {
			out = append(out, t)
		}
	}
	return out
}

func matchesTags(t *types.Task, tags []string, matchAll bool) bool {
	if matchAll {
		for _, tag := range tags {
			if !t.HasTag(tag) {
				return false
			}
		}
		return true
	}
	for _, tag := range tags {
		if t.HasTag(tag) {
			return true
		}
	}
	return false
}

// SearchTasks returns tasks whose title or notes contain query,
// case-insensitively.
func SearchTasks(tasks []*types.Task, query string) []*types.Task {
	out := []*types.Task{}
	for _, t := range tasks {
		if t.Matches(query) {
			out = append(out, t)
		}
	}
	return out
}

// TagCount pairs a tag with the number of tasks carrying it.
type TagCount struct {
	Tag   string
	Count int
}

// CountTags tallies tag usage across tasks, sorted lexicographically by
// tag. A task listing the same tag twice counts it twice; duplicates are
// permitted in tag lists.
func CountTags(tasks []*types.Task) []TagCount {
	counts := map[string]int{}
	for _, t := range tasks {
		for _, tag := range t.Tags {
			counts[tag]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}
