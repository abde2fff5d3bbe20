package todo_test

import (
	"testing"
	"time"

	"github.com/nicolagi/tjp/todo"
	"github.com/stretchr/testify/assert"
)

func TestUrgency(t *testing.T) {
	testCases := []struct {
		name     string
		todo     todo.Todo
		expected float64
	}{
		{
			name:     "nothing special",
			expected: 0,
		},
		{
			name:     "next",
			todo:     todo.Todo{Metadata: todo.Metadata{"next": todo.Text("")}},
			expected: 15,
		},
		{
			name:     "due today",
			todo:     todo.Todo{Metadata: todo.Metadata{"due": todo.NewDate(2024, time.January, 10)}},
			expected: 12,
		},
		{
			name:     "due tomorrow",
			todo:     todo.Todo{Metadata: todo.Metadata{"due": todo.NewDate(2024, time.January, 11)}},
			expected: 12,
		},
		{
			name:     "overdue",
			todo:     todo.Todo{Metadata: todo.Metadata{"due": todo.NewDate(2023, time.June, 1)}},
			expected: 12,
		},
		{
			name:     "due in two weeks",
			todo:     todo.Todo{Metadata: todo.Metadata{"due": todo.NewDate(2024, time.January, 24)}},
			expected: 4 + 8.0/3,
		},
		{
			name:     "due in ten days",
			todo:     todo.Todo{Metadata: todo.Metadata{"due": todo.NewDate(2024, time.January, 20)}},
			expected: 4 + 8/2.4,
		},
		{
			name:     "unset due",
			todo:     todo.Todo{Metadata: todo.Metadata{"due": todo.Unset{}}},
			expected: 0,
		},
		{
			name:     "high priority",
			todo:     todo.Todo{Metadata: todo.Metadata{"priority": todo.Text("H")}},
			expected: 6,
		},
		{
			name:     "medium priority",
			todo:     todo.Todo{Metadata: todo.Metadata{"priority": todo.Text("M")}},
			expected: 3.9,
		},
		{
			name:     "low priority",
			todo:     todo.Todo{Metadata: todo.Metadata{"priority": todo.Text("L")}},
			expected: 1.8,
		},
		{
			name:     "unknown priority",
			todo:     todo.Todo{Metadata: todo.Metadata{"priority": todo.Text("urgent")}},
			expected: 0,
		},
		{
			name:     "tags",
			todo:     todo.Todo{Metadata: todo.Metadata{"tags": todo.List{"a", "b"}}},
			expected: 1,
		},
		{
			name:     "empty tags",
			todo:     todo.Todo{Metadata: todo.Metadata{"tags": todo.List{}}},
			expected: 0,
		},
		{
			name:     "blocked",
			todo:     todo.Todo{Blocked: true},
			expected: -5,
		},
		{
			name:     "blocking",
			todo:     todo.Todo{Blocking: true},
			expected: 8,
		},
		{
			name:     "completed",
			todo:     todo.Todo{Completed: 1, Updated: 1e12},
			expected: -99.9,
		},
		{
			name: "everything",
			todo: todo.Todo{
				Metadata: todo.Metadata{
					"next":     todo.Text("yes"),
					"due":      todo.NewDate(2024, time.January, 10),
					"priority": todo.Text("H"),
					"tags":     todo.List{"a"},
				},
				Blocked:  true,
				Blocking: true,
			},
			expected: 15 + 12 + 6 + 1 - 5 + 8,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, todo.Urgency(&tc.todo, now), 1e-9)
		})
	}
}

func TestUrgencyCompletedBelowEverything(t *testing.T) {
	completed := &todo.Todo{
		Completed: 1,
		Updated:   time.Now().UnixMilli(),
		Metadata:  todo.Metadata{"next": todo.Text(""), "priority": todo.Text("H"), "due": todo.NewDate(2024, time.January, 1)},
		Blocking:  true,
	}
	blocked := &todo.Todo{Blocked: true}
	assert.Less(t, todo.Urgency(completed, now), todo.Urgency(blocked, now))

	older := &todo.Todo{Completed: 1, Updated: 1e12}
	newer := &todo.Todo{Completed: 1, Updated: 2e12}
	assert.Less(t, todo.Urgency(older, now), todo.Urgency(newer, now))
}

func TestUrgencyGrowsTowardsDeadline(t *testing.T) {
	previous := 0.0
	for days := 120; days >= 0; days-- {
		due := now.AddDate(0, 0, days)
		item := &todo.Todo{Metadata: todo.Metadata{"due": todo.NewDate(due.Year(), due.Month(), due.Day())}}
		u := todo.Urgency(item, now)
		assert.GreaterOrEqual(t, u, previous, "%d days left", days)
		assert.LessOrEqual(t, u, 12.0)
		previous = u
	}
}

func TestUrgencyIsRepeatable(t *testing.T) {
	item := &todo.Todo{Metadata: todo.Metadata{"due": todo.NewDate(2024, time.February, 1), "tags": todo.List{"x"}}}
	assert.Equal(t, todo.Urgency(item, now), todo.Urgency(item, now))
}
