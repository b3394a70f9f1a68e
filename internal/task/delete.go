package task

import (
	"fmt"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Delete removes a task. The subtask policy is already resolved by the
// caller: cascade true removes the task together with every task listed in
// its subtasks, cascade false removes only the task itself. Orphaned
// subtasks need no cleanup of their own records since tasks carry no parent
// field; they simply become top-level tasks.
//
// Other tasks that link to the deleted task, or that list it among their
// own subtasks, keep the now-dangling ID. Task deletion deliberately does
// not scrub references across the store, unlike note deletion.
//
// Returns ErrNotFound if the ID is absent. Everything removed lands in a
// single persisted write.
func (r *Repo) Delete(id string, cascade bool) error {
	tasks, err := r.store.Load()
	if err != nil {
		return err
	}
	t := Find(id, tasks)
	if t == nil {
		return fmt.Errorf("task %q: %w", id, types.ErrNotFound)
	}

	doomed := map[string]bool{id: true}
	if cascade {
		for _, sid := range t.Subtasks {
			doomed[sid] = true
		}
	}

	kept := tasks[:0]
	for _, candidate := range tasks {
		if !doomed[candidate.ID] {
			kept = append(kept, candidate)
		}
	}
	return r.store.Save(kept)
}
