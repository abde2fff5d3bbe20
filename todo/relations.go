package todo

import "time"

// TagRelations computes the overdue, blocked and blocking flags for a batch. A todo is blocked
// when it depends on an unfinished todo of the batch, and blocking when an unfinished todo depends
// on it; completed todos are neither. Dependencies outside the batch are ignored, so the batch
// should be the full working set, not a filtered view of it.
func TagRelations(todos []*Todo, now time.Time) {
	unfinished := make(map[string]bool)
	for _, t := range todos {
		t.Overdue = false
		if due, ok := t.Metadata.Due(); ok {
			t.Overdue = due.Before(now)
		}
		if !t.IsCompleted() {
			unfinished[t.ID] = true
		}
	}

	dependedUpon := make(map[string]bool)
	for _, t := range todos {
		t.Blocked = false
		if t.IsCompleted() {
			continue
		}
		for _, dep := range t.Metadata.Depends() {
			dependedUpon[dep] = true
			if unfinished[dep] {
				t.Blocked = true
			}
		}
	}

	for _, t := range todos {
		t.Blocking = !t.IsCompleted() && dependedUpon[t.ID]
		t.tagged = true
	}
}
