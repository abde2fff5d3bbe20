package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nicolagi/tjp/todo"
)

var (
	// ErrAmbiguousSelection is returned (wrapped in a SelectionError) when a command acting on
	// a single todo is given filters matching several.
	ErrAmbiguousSelection = errors.New("ambiguous selection")

	// ErrNoMatch is returned when a command acting on a single todo is given filters matching none.
	ErrNoMatch = errors.New("no todo matches the filters")

	// ErrAmbiguousLocalID is returned (wrapped in a SelectionError) when a short id given as a
	// dependency matches several todos.
	ErrAmbiguousLocalID = errors.New("ambiguous local id")

	// ErrUnresolvedLocalID is returned when a short id given as a dependency matches no todo.
	ErrUnresolvedLocalID = errors.New("unresolved local id")

	// ErrUsage is returned when a command is called with arguments it can't make sense of.
	ErrUsage = errors.New("usage")
)

// SelectionError describes a selection that matched several todos. It satisfies errors.Is for
// its kind, either ErrAmbiguousSelection or ErrAmbiguousLocalID.
type SelectionError struct {
	Kind    error
	Reason  string
	Matches []*todo.Todo
}

func (e *SelectionError) Error() string {
	ids := make([]string, len(e.Matches))
	for i, t := range e.Matches {
		ids[i] = t.ID
	}
	msg := fmt.Sprintf("%v (%d matches: %s)", e.Kind, len(e.Matches), strings.Join(ids, ", "))
	if e.Reason != "" {
		msg = e.Reason + ": " + msg
	}
	return msg
}

func (e *SelectionError) Is(target error) bool {
	return target == e.Kind
}
