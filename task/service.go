// Package task implements the taskwarrior-like commands over a Joplin note store.
package task

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nicolagi/tjp"
	"github.com/nicolagi/tjp/table"
	"github.com/nicolagi/tjp/todo"
)

// Store is the subset of the note store API the commands need. *tjp.Client implements it.
type Store interface {
	ListFolders(ctx context.Context) ([]*tjp.Folder, error)
	ListNotes(ctx context.Context, folderID string, page int, fields ...string) (*tjp.NotePage, error)
	NoteBody(ctx context.Context, id string) (string, error)
	CreateNote(ctx context.Context, note *tjp.NotePatch) error
	UpdateNote(ctx context.Context, id string, note *tjp.NotePatch) error
}

var _ Store = (*tjp.Client)(nil)

// Options configure a Service. The zero value fetches unfinished todos from all notebooks and
// writes uncolored, unbounded tables to standard output.
type Options struct {
	// Notebook ids. FolderTodo is where unfinished todos are listed from, FolderDone is where
	// completed todos are moved to, FolderAdd is where new todos are created. Empty means the
	// root, i.e., all notebooks, for listing.
	FolderTodo string
	FolderDone string
	FolderAdd  string

	// View selection, in decreasing order of precedence. ReallyAll lists every todo of every
	// notebook. All lists finished and unfinished todos from the configured notebooks. Completed
	// lists todos from FolderDone, including finished ones.
	ReallyAll bool
	All       bool
	Completed bool

	Out   io.Writer
	Color bool
	Width int

	// Now defaults to time.Now.
	Now func() time.Time

	// Edit lets the user edit text, e.g., in an external editor. Required by the Edit command.
	Edit func(ctx context.Context, text string) (string, error)

	// Render, if set, formats body text for Show, e.g., as markdown.
	Render func(text string) (string, error)
}

// Service runs commands against a note store.
type Service struct {
	store Store
	opts  Options
}

func New(store Store, opts Options) *Service {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{store: store, opts: opts}
}

// Command is the signature shared by all commands: the words before the command name are filters,
// the ones after are modifications or arguments.
type Command func(ctx context.Context, filters, mods []string) error

// Commands maps command names, as typed on the command line, to commands.
func (s *Service) Commands() map[string]Command {
	return map[string]Command{
		"next":     s.List,
		"add":      s.Add,
		"done":     s.Done,
		"modify":   s.Modify,
		"annotate": s.Annotate,
		"edit":     s.Edit,
		"cat":      s.Show,
		"show":     s.Show,
		"export":   s.Export,
	}
}

func (s *Service) render(todos []*todo.Todo, lookup map[string]*todo.Todo) error {
	_, err := io.WriteString(s.opts.Out, table.Render(todos, lookup, table.Options{
		Width: s.opts.Width,
		Color: s.opts.Color,
		Now:   s.opts.Now(),
	}))
	return err
}

func (s *Service) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.opts.Out, format, args...)
	return err
}
