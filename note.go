package tjp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Note partially describes a Joplin note. It only includes the fields a todo front end needs and
// should be treated as read-only. Use NotePatch to create or update notes.
type Note struct {
	ID            string `json:"id"`
	ParentID      string `json:"parent_id"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	IsTodo        int    `json:"is_todo"`
	TodoCompleted int64  `json:"todo_completed"`
	UpdatedTime   int64  `json:"updated_time"`

	// Set when unmarshalling if the body property was part of the response, so that an empty body
	// can be told apart from a body that was not requested.
	hasBody bool
}

// HasBody tells whether the body was present in the API response the note was decoded from.
func (note *Note) HasBody() bool {
	return note.hasBody
}

// SetBody sets the body after a separate fetch (see Client.NoteBody).
func (note *Note) SetBody(body string) {
	note.Body = body
	note.hasBody = true
}

// UnmarshalJSON implements json.Unmarshaler.
func (note *Note) UnmarshalJSON(b []byte) error {
	type plain Note
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*note = Note(p)
	_, note.hasBody = fields["body"]
	return nil
}

// NotePage is one page of a paginated listing.
type NotePage struct {
	Items   []*Note `json:"items"`
	HasMore bool    `json:"has_more"`
}

// NotePatch describes a new note or an update to an existing one. Only the attributes that were
// set are sent.
type NotePatch struct {
	attrs map[string]string
	err   error // If an error occurred in any of the .With* methods.
}

func NewNotePatch() *NotePatch {
	var note NotePatch
	note.attrs = make(map[string]string)
	return &note
}

// WithID sets the id of a note to be created. Joplin accepts client-chosen ids as long as they are
// 32 lowercase hexadecimal characters, see NewNoteID.
func (note *NotePatch) WithID(value string) *NotePatch {
	if note.err != nil {
		return note
	}
	if !isNoteID(value) {
		note.err = fmt.Errorf("setting id %q: %w", value, ErrBadNoteID)
		return note
	}
	note.attrs["id"] = strconv.Quote(value)
	return note
}

func (note *NotePatch) WithTitle(value string) *NotePatch {
	note.attrs["title"] = marshalString(value)
	return note
}

func (note *NotePatch) WithBody(value string) *NotePatch {
	note.attrs["body"] = marshalString(value)
	return note
}

func (note *NotePatch) WithParentID(value string) *NotePatch {
	note.attrs["parent_id"] = marshalString(value)
	return note
}

// WithTodoCompleted sets the completion time in milliseconds since the epoch; zero means not
// completed.
func (note *NotePatch) WithTodoCompleted(ms int64) *NotePatch {
	note.attrs["todo_completed"] = strconv.FormatInt(ms, 10)
	return note
}

// AsTodo marks the note as a todo (as opposed to a plain note).
func (note *NotePatch) AsTodo() *NotePatch {
	note.attrs["is_todo"] = "1"
	return note
}

// Empty tells whether no attribute has been set.
func (note *NotePatch) Empty() bool {
	return len(note.attrs) == 0
}

// Has tells whether the named attribute has been set.
func (note *NotePatch) Has(attr string) bool {
	_, ok := note.attrs[attr]
	return ok
}

// MarshalJSON implements json.Marshaler. Attributes are written in lexicographic order.
func (note *NotePatch) MarshalJSON() ([]byte, error) {
	if note.err != nil {
		return nil, note.err
	}
	keys := make([]string, 0, len(note.attrs))
	for k := range note.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	buf := bytes.NewBuffer(nil)
	buf.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(",")
		}
		_, _ = fmt.Fprintf(buf, `%q:%s`, k, note.attrs[k])
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// marshalString quotes as JSON would. (strconv.Quote escapes differently for some code points.)
func marshalString(value string) string {
	b, _ := json.Marshal(value)
	return string(b)
}
