package todo_test

import (
	"testing"
	"time"

	"github.com/nicolagi/tjp/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.January, 10, 12, 0, 0, 0, time.Local)

func TestDecodeDueRoundTrip(t *testing.T) {
	md, text, err := todo.Decode("due:2024-01-01\n\nsome text", now)
	require.Nil(t, err)
	due, ok := md.Due()
	require.True(t, ok)
	assert.False(t, due.HasClock)
	assert.True(t, due.Time.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "some text", text)
	assert.Equal(t, "due:2024-01-01\n\nsome text", todo.Encode(md, text))
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		metadata map[string]string // textual forms
		text     string
	}{
		{
			name:     "empty body",
			raw:      "",
			metadata: map[string]string{},
			text:     "",
		},
		{
			name:     "header only",
			raw:      "project:backend",
			metadata: map[string]string{"project": "backend"},
			text:     "",
		},
		{
			name:     "blank first line",
			raw:      "\nproject:backend",
			metadata: map[string]string{},
			text:     "project:backend",
		},
		{
			name:     "malformed header",
			raw:      "Dear diary,\nproject:backend\n\ntoday I",
			metadata: map[string]string{},
			text:     "Dear diary,\nproject:backend\n\ntoday I",
		},
		{
			name:     "key with spaces",
			raw:      "Note to self: call back\n\n",
			metadata: map[string]string{},
			text:     "Note to self: call back\n\n",
		},
		{
			name:     "repeated key",
			raw:      "summary:first\nsummary:second\n\nbody",
			metadata: map[string]string{"summary": "first\nsecond"},
			text:     "body",
		},
		{
			name:     "lists",
			raw:      "depends:abc, def\ntags:a, b,, a\ntags:c\n\n",
			metadata: map[string]string{"depends": "abc, def", "tags": "a, b, c"},
			text:     "",
		},
		{
			name:     "date and time",
			raw:      "due: 2024-03-05 17:30\nnext:\n\nx\n\ny",
			metadata: map[string]string{"due": "2024-03-05 17:30", "next": ""},
			text:     "x\n\ny",
		},
		{
			name:     "relative date",
			raw:      "due:tomorrow\n\n",
			metadata: map[string]string{"due": "2024-01-11"},
			text:     "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			md, text, err := todo.Decode(tc.raw, now)
			require.Nil(t, err)
			actual := make(map[string]string)
			for _, key := range md.Keys() {
				actual[key] = md[key].String()
			}
			assert.Equal(t, tc.metadata, actual)
			assert.Equal(t, tc.text, text)
		})
	}
}

func TestDecodeInvalidDue(t *testing.T) {
	for _, raw := range []string{
		"due:someday\n\n",
		"due:2024-01-01\ndue:2024-01-02\n\n",
		"due:2024-13-01\n\n",
	} {
		t.Run(raw, func(t *testing.T) {
			_, _, err := todo.Decode(raw, now)
			assert.ErrorIs(t, err, todo.ErrInvalidMetadata)
		})
	}
}

func TestEncode(t *testing.T) {
	md := todo.Metadata{
		"tags":     todo.List{"b", "a"},
		"due":      todo.Unset{},
		"priority": todo.Text("H"),
		"summary":  todo.Text("one\ntwo"),
		"depends":  todo.List{},
	}
	assert.Equal(t, "priority:H\nsummary:one\nsummary:two\ntags:b, a\n\nbody", todo.Encode(md, "body"))
	assert.Equal(t, "\n", todo.Encode(nil, ""))
}

func TestRoundTrip(t *testing.T) {
	testCases := []struct {
		metadata todo.Metadata
		text     string
	}{
		{metadata: todo.Metadata{}, text: ""},
		{metadata: todo.Metadata{}, text: "key:value\n\nlooks like a header"},
		{metadata: todo.Metadata{"due": todo.NewDate(2024, time.February, 29)}, text: "leap"},
		{metadata: todo.Metadata{"due": todo.Due{Time: time.Date(2024, time.March, 1, 9, 15, 0, 0, time.Local), HasClock: true}}},
		{metadata: todo.Metadata{"tags": todo.List{"x", "y"}, "depends": todo.List{"0123abcd"}}, text: "multi\nline\n\ntext"},
		{metadata: todo.Metadata{"annotation_20240110T120000.000000": todo.Text("called\nback")}, text: "\n"},
	}
	for _, tc := range testCases {
		t.Run("", func(t *testing.T) {
			raw := todo.Encode(tc.metadata, tc.text)
			md, text, err := todo.Decode(raw, now)
			require.Nil(t, err)
			assert.Equal(t, tc.text, text)
			require.Equal(t, tc.metadata.Keys(), md.Keys())
			for _, key := range md.Keys() {
				assert.Equal(t, tc.metadata[key].String(), md[key].String(), key)
			}
			assert.Equal(t, raw, todo.Encode(md, text))
		})
	}
}

func TestParseDue(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
		clock    bool
	}{
		{input: "2024-01-01", expected: "2024-01-01"},
		{input: "  2024-01-01 ", expected: "2024-01-01"},
		{input: "2024-01-01 08:05", expected: "2024-01-01 08:05", clock: true},
		{input: "today", expected: "2024-01-10"},
		{input: "tomorrow", expected: "2024-01-11"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v, err := todo.ParseDue(tc.input, now)
			require.Nil(t, err)
			due, ok := v.(todo.Due)
			require.True(t, ok)
			assert.Equal(t, tc.expected, due.String())
			assert.Equal(t, tc.clock, due.HasClock)
		})
	}

	v, err := todo.ParseDue(" ", now)
	require.Nil(t, err)
	assert.Equal(t, todo.Unset{}, v)

	for _, input := range []string{"yesterday", "01/02/2024", "2024-1-1", "2024-01-01T10:00"} {
		_, err := todo.ParseDue(input, now)
		assert.ErrorIs(t, err, todo.ErrInvalidMetadata, input)
	}
}

func TestDueBefore(t *testing.T) {
	assert.False(t, todo.NewDate(2024, time.January, 10).Before(now))
	assert.True(t, todo.NewDate(2024, time.January, 9).Before(now))
	morning := todo.Due{Time: time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local), HasClock: true}
	assert.True(t, morning.Before(now))
	evening := todo.Due{Time: time.Date(2024, time.January, 10, 18, 0, 0, 0, time.Local), HasClock: true}
	assert.False(t, evening.Before(now))
}

func TestDueDaysFrom(t *testing.T) {
	assert.Equal(t, 0, todo.NewDate(2024, time.January, 10).DaysFrom(now))
	assert.Equal(t, 1, todo.NewDate(2024, time.January, 11).DaysFrom(now))
	assert.Equal(t, -10, todo.NewDate(2023, time.December, 31).DaysFrom(now))
	assert.Equal(t, 31, todo.NewDate(2024, time.February, 10).DaysFrom(now))
	late := todo.Due{Time: time.Date(2024, time.January, 11, 23, 59, 0, 0, time.Local), HasClock: true}
	assert.Equal(t, 1, late.DaysFrom(now))
}
