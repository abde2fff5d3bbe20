package todo

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
)

// Value is a typed metadata value. Its String method returns the textual form written to the note
// body; an empty textual form means the key is not written at all.
type Value interface {
	String() string
}

// Text is an opaque metadata value, kept exactly as found in the note.
type Text string

func (v Text) String() string { return string(v) }

// List is the value of tags and depends.
type List []string

func (v List) String() string { return strings.Join(v, ", ") }

// Unset marks a key whose value should be removed, e.g., after "due:" was given on the command line.
type Unset struct{}

func (Unset) String() string { return "" }

// Metadata maps keys to typed values.
type Metadata map[string]Value

// Keys returns the keys in lexicographic order, which is also the order in which they are encoded.
func (md Metadata) Keys() []string {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (md Metadata) Has(key string) bool {
	_, ok := md[key]
	return ok
}

// Text returns the textual form of the value, or the empty string if absent.
func (md Metadata) Text(key string) string {
	if v, ok := md[key]; ok {
		return v.String()
	}
	return ""
}

// List returns the list stored under key, or nil.
func (md Metadata) List(key string) []string {
	if v, ok := md[key].(List); ok {
		return v
	}
	return nil
}

func (md Metadata) Tags() []string    { return md.List("tags") }
func (md Metadata) Depends() []string { return md.List("depends") }

// Due returns the due value, if one is set (Unset does not count).
func (md Metadata) Due() (Due, bool) {
	d, ok := md["due"].(Due)
	return d, ok
}

// ParseValue converts the textual value of a metadata key to its typed form. Continuation lines
// (repeated keys) are accepted for lists, where each line adds items, but not for due.
func ParseValue(key, raw string, now time.Time) (Value, error) {
	switch key {
	case "tags", "depends":
		return parseList(raw), nil
	case "due":
		if strings.Contains(raw, "\n") {
			return nil, fmt.Errorf("%w: due spans several lines", ErrInvalidMetadata)
		}
		return ParseDue(raw, now)
	default:
		return Text(raw), nil
	}
}

func parseList(raw string) List {
	list := List{}
	seen := make(map[string]bool)
	for _, line := range strings.Split(raw, "\n") {
		for _, item := range strings.Split(line, ",") {
			item = strings.TrimSpace(item)
			if item == "" || seen[item] {
				continue
			}
			seen[item] = true
			list = append(list, item)
		}
	}
	return list
}

// header is the raw key:value block of a body, before type conversion.
type header struct {
	keys   []string // in order of first appearance
	values map[string]string
}

// splitBody separates the metadata header from the free text. The header is the block of
// key:value lines before the first blank line; if any line in that block is not key:value, the
// body has no header and is all free text.
func splitBody(raw string) (header, string) {
	h := header{values: make(map[string]string)}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		key, value, ok := headerLine(line)
		if !ok {
			if strings.TrimSpace(line) == "" {
				return h, strings.Join(lines[i+1:], "\n")
			}
			return header{}, raw
		}
		if prev, ok := h.values[key]; ok {
			h.values[key] = prev + "\n" + value
		} else {
			h.keys = append(h.keys, key)
			h.values[key] = value
		}
	}
	return h, ""
}

func headerLine(line string) (key, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i <= 0 {
		return "", "", false
	}
	key = line[:i]
	if strings.IndexFunc(key, unicode.IsSpace) >= 0 {
		return "", "", false
	}
	return key, line[i+1:], true
}

// Decode splits a note body into typed metadata and free text. A body without a well formed
// header decodes to empty metadata and the whole body as text. The now argument resolves relative
// dates such as today.
func Decode(raw string, now time.Time) (Metadata, string, error) {
	h, text := splitBody(raw)
	md := make(Metadata, len(h.keys))
	for _, key := range h.keys {
		v, err := ParseValue(key, h.values[key], now)
		if err != nil {
			return nil, "", err
		}
		md[key] = v
	}
	return md, text, nil
}

// Encode is the inverse of Decode: one key:value line per value line, keys sorted, values with an
// empty textual form skipped, then a blank line and the free text.
func Encode(md Metadata, text string) string {
	var b strings.Builder
	for _, key := range md.Keys() {
		value := md[key].String()
		if value == "" {
			continue
		}
		for _, line := range strings.Split(value, "\n") {
			b.WriteString(key)
			b.WriteByte(':')
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	b.WriteString(text)
	return b.String()
}
