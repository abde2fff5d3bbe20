package todo

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nicolagi/tjp"
)

// AnnotationPrefix starts the metadata keys holding annotations. The rest of the key is the time
// the annotation was made, in the basic ISO 8601 format of annotationLayout.
const AnnotationPrefix = "annotation_"

const annotationLayout = "20060102T150405"

// Todo is a task backed by a Joplin todo note.
type Todo struct {
	ID        string
	ParentID  string
	Title     string
	Body      string // Free text following the metadata header.
	Metadata  Metadata
	Completed int64 // Milliseconds since the epoch, zero if not completed.
	Updated   int64 // Milliseconds since the epoch.

	// Derived, never written back. See TagRelations and AssignLocalIDs.
	Overdue  bool
	Blocked  bool
	Blocking bool
	LocalID  string

	tagged bool
}

// FromNote builds a todo from a note record. The body must have been fetched already, otherwise
// the todo has no metadata.
func FromNote(note *tjp.Note, now time.Time) (*Todo, error) {
	md, text, err := Decode(note.Body, now)
	if err != nil {
		return nil, fmt.Errorf("note %s: %w", note.ID, err)
	}
	return &Todo{
		ID:        note.ID,
		ParentID:  note.ParentID,
		Title:     note.Title,
		Body:      text,
		Metadata:  md,
		Completed: note.TodoCompleted,
		Updated:   note.UpdatedTime,
	}, nil
}

func (t *Todo) IsCompleted() bool {
	return t.Completed != 0
}

// Tagged tells whether TagRelations has computed the overdue, blocked and blocking flags.
func (t *Todo) Tagged() bool {
	return t.tagged
}

// EncodeBody returns the full note body: metadata header and free text.
func (t *Todo) EncodeBody() string {
	return Encode(t.Metadata, t.Body)
}

// Annotation is a timestamped comment stored in the metadata.
type Annotation struct {
	Time time.Time
	Text string
}

// Annotate adds an annotation made at the given time and returns its key.
func (t *Todo) Annotate(text string, at time.Time) string {
	key := AnnotationPrefix + at.Format(annotationLayout+".000000")
	if t.Metadata == nil {
		t.Metadata = make(Metadata)
	}
	t.Metadata[key] = Text(text)
	return key
}

// Annotations returns the annotations in chronological order. Keys whose suffix is not a
// timestamp are skipped.
func (t *Todo) Annotations() []Annotation {
	var annotations []Annotation
	for _, key := range t.Metadata.Keys() {
		if !strings.HasPrefix(key, AnnotationPrefix) {
			continue
		}
		// Fractional seconds after the layout are accepted when parsing.
		at, err := time.ParseInLocation(annotationLayout, key[len(AnnotationPrefix):], time.Local)
		if err != nil {
			continue
		}
		annotations = append(annotations, Annotation{Time: at, Text: t.Metadata[key].String()})
	}
	sort.SliceStable(annotations, func(i, j int) bool {
		return annotations[i].Time.Before(annotations[j].Time)
	})
	return annotations
}
