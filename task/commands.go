package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nicolagi/tjp"
	"github.com/nicolagi/tjp/todo"
	log "github.com/sirupsen/logrus"
)

// List writes the table of the todos in view that match the filters.
func (s *Service) List(ctx context.Context, filters, mods []string) error {
	compiled, err := todo.CompileFilters(filters)
	if err != nil {
		return err
	}
	if len(mods) != 0 {
		log.WithField("args", mods).Warn("Ignoring arguments after the command")
	}
	b, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	return s.render(compiled.Apply(b.todos), b.lookup)
}

// Add creates a todo from the modifications: +tag adds a tag, key:value sets metadata and the other
// words make the title. Dependencies may be given by local id, as shown by List.
func (s *Service) Add(ctx context.Context, filters, mods []string) error {
	if len(filters) != 0 {
		return fmt.Errorf("%w: add must come before the todo description (got %q before it)", ErrUsage, filters)
	}
	if len(mods) == 0 {
		return fmt.Errorf("%w: add needs at least a title", ErrUsage)
	}
	now := s.opts.Now()
	parsed := todo.ParseMods(mods)
	if len(parsed.RemoveTags) != 0 {
		log.WithField("tags", parsed.RemoveTags).Warn("Ignoring tag removals for a new todo")
		parsed.RemoveTags = nil
	}
	t := &todo.Todo{Title: parsed.Title, Metadata: make(todo.Metadata)}
	if _, err := parsed.Apply(t, now); err != nil {
		return err
	}
	id, err := tjp.NewNoteID()
	if err != nil {
		return err
	}
	t.ID = id
	t.ParentID = s.opts.FolderAdd

	var lookup map[string]*todo.Todo
	if len(t.Metadata.Depends()) != 0 {
		b, err := s.fetch(ctx)
		if err != nil {
			return err
		}
		if err := s.expandDepends(t, b.todos); err != nil {
			return err
		}
		todo.AssignLocalIDs(b.todos)
		lookup = b.lookup
	}

	patch := tjp.NewNotePatch().WithID(t.ID).AsTodo().WithTitle(t.Title).WithBody(t.EncodeBody())
	if s.opts.FolderAdd != "" {
		patch.WithParentID(s.opts.FolderAdd)
	} else {
		log.Warn("No notebook configured for new todos (folder_add), creating the todo at the root")
	}
	if err := s.render([]*todo.Todo{t}, lookup); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"id":    t.ID,
		"title": t.Title,
	}).Debug("Creating todo")
	return s.store.CreateNote(ctx, patch)
}

// Done marks the single todo matching the filters as completed, moving it to FolderDone if
// configured.
func (s *Service) Done(ctx context.Context, filters, mods []string) error {
	compiled, err := todo.CompileFilters(filters)
	if err != nil {
		return err
	}
	t, _, err := s.selectOne(ctx, "done", compiled)
	if err != nil {
		return err
	}
	patch := tjp.NewNotePatch().WithTodoCompleted(s.opts.Now().UnixMilli())
	if s.opts.FolderDone != "" {
		log.WithField("folder", s.opts.FolderDone).Debug("Moving completed todo")
		patch.WithParentID(s.opts.FolderDone)
	}
	if err := s.store.UpdateNote(ctx, t.ID, patch); err != nil {
		return err
	}
	return s.printf("Task finished : %s\n", t.Title)
}

// Modify changes the title, tags and metadata of the single todo matching the filters. An empty
// metadata value (key:) removes the key.
func (s *Service) Modify(ctx context.Context, filters, mods []string) error {
	compiled, err := todo.CompileFilters(filters)
	if err != nil {
		return err
	}
	parsed := todo.ParseMods(mods)
	if parsed.Empty() {
		return fmt.Errorf("%w: modify needs at least one modification", ErrUsage)
	}
	now := s.opts.Now()
	if err := validate(parsed, now); err != nil {
		return err
	}
	t, b, err := s.selectOne(ctx, "modify", compiled)
	if err != nil {
		return err
	}

	changed, err := parsed.Apply(t, now)
	if err != nil {
		return err
	}
	if assigns(parsed, "depends") {
		if err := s.expandDepends(t, b.todos); err != nil {
			return err
		}
	}
	patch := tjp.NewNotePatch()
	if changed {
		patch.WithBody(t.EncodeBody())
	}
	if parsed.Title != "" && parsed.Title != t.Title {
		t.Title = parsed.Title
		patch.WithTitle(t.Title)
	}
	if patch.Empty() {
		log.WithField("id", t.ID).Info("Nothing to change")
	} else {
		log.WithFields(log.Fields{
			"id":    t.ID,
			"body":  patch.Has("body"),
			"title": patch.Has("title"),
		}).Debug("Modifying todo")
		if err := s.store.UpdateNote(ctx, t.ID, patch); err != nil {
			return err
		}
	}
	todo.TagRelations(b.todos, now)
	todo.AssignLocalIDs(b.todos)
	return s.render([]*todo.Todo{t}, b.lookup)
}

// validate types the metadata assignments, so that invalid values are reported before any request
// is made.
func validate(mods todo.Mods, now time.Time) error {
	for _, a := range mods.Assignments {
		if _, err := todo.ParseValue(a.Key, a.Value, now); err != nil {
			return err
		}
	}
	return nil
}

func assigns(mods todo.Mods, key string) bool {
	for _, a := range mods.Assignments {
		if a.Key == key {
			return true
		}
	}
	return false
}

// Annotate adds a timestamped comment, made of the arguments, to the single todo matching the
// filters.
func (s *Service) Annotate(ctx context.Context, filters, mods []string) error {
	compiled, err := todo.CompileFilters(filters)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(mods, " "))
	if text == "" {
		return s.printf("Empty annotation is ignored.\n")
	}
	t, _, err := s.selectOne(ctx, "annotate", compiled)
	if err != nil {
		return err
	}
	key := t.Annotate(text, s.opts.Now())
	log.WithFields(log.Fields{
		"id":  t.ID,
		"key": key,
	}).Debug("Annotating todo")
	return s.store.UpdateNote(ctx, t.ID, tjp.NewNotePatch().WithBody(t.EncodeBody()))
}

// Edit lets the user edit the free text of the single todo matching the filters. The metadata is
// left alone.
func (s *Service) Edit(ctx context.Context, filters, mods []string) error {
	compiled, err := todo.CompileFilters(filters)
	if err != nil {
		return err
	}
	if s.opts.Edit == nil {
		return fmt.Errorf("%w: no editor", ErrUsage)
	}
	t, _, err := s.selectOne(ctx, "edit", compiled)
	if err != nil {
		return err
	}
	edited, err := s.opts.Edit(ctx, t.Body)
	if err != nil {
		return fmt.Errorf("edit %s: %w", t.ID, err)
	}
	log.WithFields(log.Fields{
		"before": len(t.Body),
		"after":  len(edited),
	}).Debug("Edited text")
	if edited == t.Body {
		log.Info("No modification")
		return nil
	}
	t.Body = edited
	return s.store.UpdateNote(ctx, t.ID, tjp.NewNotePatch().WithBody(t.EncodeBody()))
}

// Show writes the free text of the single todo matching the filters.
func (s *Service) Show(ctx context.Context, filters, mods []string) error {
	compiled, err := todo.CompileFilters(filters)
	if err != nil {
		return err
	}
	t, _, err := s.selectOne(ctx, "show", compiled)
	if err != nil {
		return err
	}
	text := t.Body
	if s.opts.Render != nil {
		if text, err = s.opts.Render(text); err != nil {
			return fmt.Errorf("show %s: %w", t.ID, err)
		}
	}
	return s.printf("%s\n", text)
}

// Notebooks writes the notebook tree, one "id (title)" per line, indented by depth.
func (s *Service) Notebooks(ctx context.Context) error {
	folders, err := s.store.ListFolders(ctx)
	if err != nil {
		return err
	}
	const header = "Here are your notebooks (ID and Title)"
	if err := s.printf("%s\n%s\n", header, strings.Repeat("=", len(header))); err != nil {
		return err
	}
	visited := make(map[string]bool)
	var walk func(parentID, indent string) error
	walk = func(parentID, indent string) error {
		for _, f := range tjp.FolderChildren(folders, parentID) {
			if visited[f.ID] {
				continue
			}
			visited[f.ID] = true
			if err := s.printf("%s%s (%s)\n", indent, f.ID, f.Title); err != nil {
				return err
			}
			if err := walk(f.ID, indent+"  "); err != nil {
				return err
			}
		}
		return nil
	}
	return walk("", "")
}
