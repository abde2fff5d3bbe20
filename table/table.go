// Package table renders batches of todos as terminal tables that fit a given width.
package table

import (
	"sort"
	"time"

	"github.com/nicolagi/tjp/todo"
)

// Empty is what Render returns for an empty batch.
const Empty = "Nothing to display.\n"

// Options control rendering.
type Options struct {
	// Width is the available width in columns. Zero or negative means unbounded.
	Width int

	// Color enables ANSI escape sequences. Without color, completed titles are marked <F>...</F>.
	Color bool

	// Now is the reference time for urgency.
	Now time.Time
}

// Render returns the batch as a table sorted by decreasing urgency, equal urgencies keeping the
// order of the batch. The lookup maps full ids to todos and is used to display dependencies by
// local id; it may be nil. The batch itself is not modified.
func Render(todos []*todo.Todo, lookup map[string]*todo.Todo, opts Options) string {
	if len(todos) == 0 {
		return Empty
	}
	rows := make(byUrgency, len(todos))
	for i, t := range todos {
		rows[i] = scored{todo: t, urgency: todo.Urgency(t, opts.Now)}
	}
	sort.Stable(rows)
	return fit(buildColumns(rows, lookup, newStyles(opts.Color)), opts.Width)
}

type scored struct {
	todo    *todo.Todo
	urgency float64
}

type byUrgency []scored

func (rows byUrgency) Len() int {
	return len(rows)
}

func (rows byUrgency) Swap(i, j int) {
	rows[i], rows[j] = rows[j], rows[i]
}

func (rows byUrgency) Less(i, j int) bool {
	return rows[i].urgency > rows[j].urgency
}
