package todo

import (
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	tagModRegexp      = regexp.MustCompile(`^[+-][a-zA-Z0-9]`)
	metadataModRegexp = regexp.MustCompile(`^[a-zA-Z]+:`)
)

// Assignment sets a metadata key from the command line. An empty value removes the key.
type Assignment struct {
	Key   string
	Value string
}

// Mods are the words following add or modify.
type Mods struct {
	Title       string       // Remaining words, joined with spaces.
	AddTags     []string     // From +tag, without the sign.
	RemoveTags  []string     // From -tag, without the sign.
	Assignments []Assignment // From key:value, in command line order.
}

// ParseMods classifies words: +tag and -tag change tags, key:value assigns metadata, anything
// else is part of the title.
func ParseMods(words []string) Mods {
	var mods Mods
	var title []string
	for _, word := range words {
		switch {
		case tagModRegexp.MatchString(word):
			if word[0] == '+' {
				mods.AddTags = append(mods.AddTags, word[1:])
			} else {
				mods.RemoveTags = append(mods.RemoveTags, word[1:])
			}
		case metadataModRegexp.MatchString(word):
			key, value, _ := cut(word, ":")
			mods.Assignments = append(mods.Assignments, Assignment{Key: key, Value: value})
		default:
			title = append(title, word)
		}
	}
	mods.Title = strings.Join(title, " ")
	log.WithFields(log.Fields{
		"title":       mods.Title,
		"add":         mods.AddTags,
		"remove":      mods.RemoveTags,
		"assignments": mods.Assignments,
	}).Debug("Parsed modifications")
	return mods
}

func (mods Mods) Empty() bool {
	return mods.Title == "" && len(mods.AddTags) == 0 && len(mods.RemoveTags) == 0 && len(mods.Assignments) == 0
}

// Apply changes the todo's tags and metadata (not its title), typing the assigned values as
// ParseValue does. It reports whether the metadata changed. Nothing is changed if an assignment
// is invalid.
func (mods Mods) Apply(t *Todo, now time.Time) (changed bool, err error) {
	values := make(map[string]Value, len(mods.Assignments))
	for _, a := range mods.Assignments {
		v, err := ParseValue(a.Key, a.Value, now)
		if err != nil {
			return false, err
		}
		values[a.Key] = v
	}
	if t.Metadata == nil {
		t.Metadata = make(Metadata)
	}
	for _, a := range mods.Assignments {
		v := values[a.Key]
		if v.String() == "" {
			if t.Metadata.Has(a.Key) {
				delete(t.Metadata, a.Key)
				changed = true
			}
			continue
		}
		if t.Metadata.Text(a.Key) != v.String() {
			changed = true
		}
		t.Metadata[a.Key] = v
	}
	tags := append(List{}, t.Metadata.Tags()...)
	tagsChanged := false
	for _, tag := range mods.AddTags {
		if !contains(tags, tag) {
			tags = append(tags, tag)
			tagsChanged = true
		}
	}
	for _, tag := range mods.RemoveTags {
		if i := index(tags, tag); i >= 0 {
			tags = append(tags[:i], tags[i+1:]...)
			tagsChanged = true
		}
	}
	if tagsChanged {
		changed = true
		if len(tags) == 0 {
			delete(t.Metadata, "tags")
		} else {
			t.Metadata["tags"] = tags
		}
	}
	return changed, nil
}

func contains(list []string, s string) bool {
	return index(list, s) >= 0
}

func index(list []string, s string) int {
	for i, candidate := range list {
		if candidate == s {
			return i
		}
	}
	return -1
}
