package task

import (
	"context"
	"fmt"
	"time"

	"github.com/nicolagi/tjp/todo"
	"gopkg.in/yaml.v3"
)

type exported struct {
	ID        string            `yaml:"id"`
	LocalID   string            `yaml:"local_id"`
	Title     string            `yaml:"title"`
	Notebook  string            `yaml:"notebook,omitempty"`
	Completed string            `yaml:"completed,omitempty"`
	Updated   string            `yaml:"updated,omitempty"`
	Urgency   float64           `yaml:"urgency"`
	Overdue   bool              `yaml:"overdue,omitempty"`
	Blocked   bool              `yaml:"blocked,omitempty"`
	Blocking  bool              `yaml:"blocking,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
	Body      string            `yaml:"body,omitempty"`
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).Local().Format(time.RFC3339)
}

// Export writes the todos in view that match the filters as a stream of YAML documents, in id
// order.
func (s *Service) Export(ctx context.Context, filters, mods []string) error {
	compiled, err := todo.CompileFilters(filters)
	if err != nil {
		return err
	}
	b, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	now := s.opts.Now()
	enc := yaml.NewEncoder(s.opts.Out)
	enc.SetIndent(2)
	for _, t := range compiled.Apply(b.todos) {
		e := exported{
			ID:        t.ID,
			LocalID:   t.LocalID,
			Title:     t.Title,
			Notebook:  t.ParentID,
			Completed: formatMillis(t.Completed),
			Updated:   formatMillis(t.Updated),
			Urgency:   todo.Urgency(t, now),
			Overdue:   t.Overdue,
			Blocked:   t.Blocked,
			Blocking:  t.Blocking,
			Body:      t.Body,
		}
		if len(t.Metadata) != 0 {
			e.Metadata = make(map[string]string, len(t.Metadata))
			for key, value := range t.Metadata {
				e.Metadata[key] = value.String()
			}
		}
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("export %s: %w", t.ID, err)
		}
	}
	return enc.Close()
}
