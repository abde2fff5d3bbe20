package todo_test

import (
	"testing"
	"time"

	"github.com/nicolagi/tjp"
	"github.com/nicolagi/tjp/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNote(t *testing.T) {
	note := &tjp.Note{
		ID:            "0123456789abcdef0123456789abcdef",
		ParentID:      "fedcba9876543210fedcba9876543210",
		Title:         "Pay taxes",
		Body:          "due:2024-04-15\ntags:admin\n\nBring receipts.",
		IsTodo:        1,
		TodoCompleted: 0,
		UpdatedTime:   1700000000000,
	}
	item, err := todo.FromNote(note, now)
	require.Nil(t, err)
	assert.Equal(t, note.ID, item.ID)
	assert.Equal(t, note.ParentID, item.ParentID)
	assert.Equal(t, "Pay taxes", item.Title)
	assert.Equal(t, "Bring receipts.", item.Body)
	assert.Equal(t, []string{"admin"}, item.Metadata.Tags())
	assert.False(t, item.IsCompleted())
	assert.False(t, item.Tagged())
	assert.Equal(t, int64(1700000000000), item.Updated)
	assert.Equal(t, note.Body, item.EncodeBody())

	note.Body = "due:never\n\n"
	_, err = todo.FromNote(note, now)
	assert.ErrorIs(t, err, todo.ErrInvalidMetadata)
	assert.Contains(t, err.Error(), note.ID)
}

func TestAnnotations(t *testing.T) {
	item := &todo.Todo{Body: "text"}
	second := time.Date(2024, time.January, 10, 12, 30, 0, 250000000, time.Local)
	first := time.Date(2024, time.January, 9, 8, 0, 0, 0, time.Local)
	key := item.Annotate("second", second)
	assert.Equal(t, "annotation_20240110T123000.250000", key)
	item.Annotate("first", first)
	item.Metadata["annotation_garbage"] = todo.Text("ignored")

	annotations := item.Annotations()
	require.Len(t, annotations, 2)
	assert.Equal(t, "first", annotations[0].Text)
	assert.True(t, annotations[0].Time.Equal(first))
	assert.Equal(t, "second", annotations[1].Text)
	assert.True(t, annotations[1].Time.Equal(second))

	assert.Equal(t,
		"annotation_20240109T080000.000000:first\nannotation_20240110T123000.250000:second\nannotation_garbage:ignored\n\ntext",
		item.EncodeBody())
}
