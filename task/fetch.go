package task

import (
	"context"
	"fmt"

	"github.com/nicolagi/tjp/todo"
	log "github.com/sirupsen/logrus"
)

// The body is left out of listings, as it can be large; it is fetched separately, and only for
// the todos that are kept.
var noteFields = []string{"id", "parent_id", "is_todo", "title", "todo_completed", "updated_time"}

// batch is the working set of a command.
type batch struct {
	// The todos in view, with relations computed.
	todos []*todo.Todo

	// Every todo seen while fetching, by id, including finished todos out of view (whose metadata
	// is not decoded). Used to display dependencies.
	lookup map[string]*todo.Todo
}

type view struct {
	folders  []string // An empty id stands for the root.
	finished bool
}

func (s *Service) view() view {
	switch {
	case s.opts.ReallyAll:
		return view{folders: []string{""}, finished: true}
	case s.opts.All:
		var folders []string
		seen := make(map[string]bool)
		for _, f := range []string{s.opts.FolderTodo, s.opts.FolderDone, s.opts.FolderAdd} {
			if f != "" && !seen[f] {
				seen[f] = true
				folders = append(folders, f)
			}
		}
		if len(folders) == 0 {
			folders = []string{""}
		}
		return view{folders: folders, finished: true}
	case s.opts.Completed:
		return view{folders: []string{s.opts.FolderDone}, finished: true}
	default:
		return view{folders: []string{s.opts.FolderTodo}}
	}
}

func (s *Service) fetch(ctx context.Context) (*batch, error) {
	v := s.view()
	now := s.opts.Now()
	b := &batch{lookup: make(map[string]*todo.Todo)}
	for _, folder := range v.folders {
		for page := 1; ; page++ {
			np, err := s.store.ListNotes(ctx, folder, page, noteFields...)
			if err != nil {
				return nil, fmt.Errorf("fetch todos: %w", err)
			}
			for _, note := range np.Items {
				if note.IsTodo == 0 || b.lookup[note.ID] != nil {
					continue
				}
				if note.TodoCompleted != 0 && !v.finished {
					b.lookup[note.ID] = &todo.Todo{
						ID:        note.ID,
						ParentID:  note.ParentID,
						Title:     note.Title,
						Completed: note.TodoCompleted,
						Updated:   note.UpdatedTime,
					}
					continue
				}
				if !note.HasBody() {
					body, err := s.store.NoteBody(ctx, note.ID)
					if err != nil {
						return nil, fmt.Errorf("fetch todos: %w", err)
					}
					note.SetBody(body)
				}
				t, err := todo.FromNote(note, now)
				if err != nil {
					return nil, fmt.Errorf("fetch todos: %w", err)
				}
				b.todos = append(b.todos, t)
				b.lookup[t.ID] = t
			}
			if !np.HasMore {
				break
			}
		}
	}
	log.WithFields(log.Fields{
		"folders":  v.folders,
		"finished": v.finished,
		"in view":  len(b.todos),
		"seen":     len(b.lookup),
	}).Debug("Fetched todos")
	todo.TagRelations(b.todos, now)
	return b, nil
}

// selectOne returns the single todo matching the filters, or an error. If several match, their
// table is written out before returning a SelectionError.
func (s *Service) selectOne(ctx context.Context, command string, filters todo.Filters) (*todo.Todo, *batch, error) {
	b, err := s.fetch(ctx)
	if err != nil {
		return nil, nil, err
	}
	matches := filters.Apply(b.todos)
	switch len(matches) {
	case 0:
		return nil, nil, fmt.Errorf("%s: %w", command, ErrNoMatch)
	case 1:
		log.WithFields(log.Fields{
			"command": command,
			"id":      matches[0].ID,
			"title":   matches[0].Title,
		}).Debug("Selected todo")
		return matches[0], b, nil
	}
	if err := s.render(matches, b.lookup); err != nil {
		return nil, nil, err
	}
	return nil, nil, &SelectionError{
		Kind:    ErrAmbiguousSelection,
		Reason:  command + " acts on a single todo",
		Matches: matches,
	}
}

// expandDepends replaces the short ids in the todo's depends list with the full ids of the
// candidates they are a prefix of. Nothing is changed unless every short id matches exactly one
// candidate.
func (s *Service) expandDepends(t *todo.Todo, candidates []*todo.Todo) error {
	deps := t.Metadata.Depends()
	if len(deps) == 0 {
		return nil
	}
	full := make(todo.List, 0, len(deps))
	for _, short := range deps {
		matches := todo.MatchLocalID(candidates, short)
		switch len(matches) {
		case 0:
			return fmt.Errorf("depends %s: %w", short, ErrUnresolvedLocalID)
		case 1:
			if !contains(full, matches[0].ID) {
				full = append(full, matches[0].ID)
			}
		default:
			todo.AssignLocalIDs(matches)
			if err := s.render(matches, nil); err != nil {
				return err
			}
			return &SelectionError{
				Kind:    ErrAmbiguousLocalID,
				Reason:  "depends " + short,
				Matches: matches,
			}
		}
	}
	log.WithFields(log.Fields{
		"short": deps,
		"full":  full,
	}).Debug("Expanded dependencies")
	t.Metadata["depends"] = full
	return nil
}

func contains(list []string, s string) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}
