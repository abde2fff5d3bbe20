package todo

import (
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// FilterKind tells how a filter expression was understood.
type FilterKind int

const (
	MetadataFilter FilterKind = iota // key:value, -key:value
	IDFilter                         // hexadecimal id prefix
	TagFilter                        // +tag, -tag
	TextFilter                       // substring of the title
)

func (kind FilterKind) String() string {
	switch kind {
	case MetadataFilter:
		return "metadata"
	case IDFilter:
		return "id"
	case TagFilter:
		return "tag"
	case TextFilter:
		return "text"
	default:
		return fmt.Sprintf("FilterKind(%d)", int(kind))
	}
}

var idFilterRegexp = regexp.MustCompile(`^[0-9a-f]+$`)

// Filter is one compiled filter expression.
type Filter struct {
	Kind   FilterKind
	Key    string // Metadata key, for MetadataFilter.
	Value  string // Metadata value, id prefix, tag or text.
	Negate bool   // For MetadataFilter and TagFilter.
}

// Filters are ANDed together.
type Filters []Filter

// CompileFilters classifies each expression, in this order: anything containing a colon is a
// metadata filter; the first hexadecimal word is an id prefix filter; words starting with + or -
// are tag filters; the rest are case-insensitive title searches.
func CompileFilters(exprs []string) (Filters, error) {
	filters := make(Filters, 0, len(exprs))
	allowID := true
	for _, expr := range exprs {
		var f Filter
		switch {
		case strings.Contains(expr, ":"):
			f.Kind = MetadataFilter
			if strings.HasPrefix(expr, "-") {
				f.Negate = true
				expr = expr[1:]
			}
			f.Key, f.Value, _ = cut(expr, ":")
		case allowID && idFilterRegexp.MatchString(expr):
			// More than one id filter makes no sense; the second one is taken as text.
			allowID = false
			f.Kind = IDFilter
			f.Value = expr
		case strings.HasPrefix(expr, "+") || strings.HasPrefix(expr, "-"):
			f.Kind = TagFilter
			f.Negate = expr[0] == '-'
			f.Value = expr[1:]
		default:
			f.Kind = TextFilter
			f.Value = expr
		}
		if err := f.validate(); err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{
			"kind":   f.Kind,
			"key":    f.Key,
			"value":  f.Value,
			"negate": f.Negate,
		}).Debug("Compiled filter")
		filters = append(filters, f)
	}
	return filters, nil
}

func (f Filter) validate() error {
	switch f.Kind {
	case IDFilter:
		if f.Value == "" {
			return fmt.Errorf("%w: empty id", ErrInvalidFilter)
		}
	case TextFilter:
		if f.Value == "" {
			return fmt.Errorf("%w: empty text", ErrInvalidFilter)
		}
	}
	return nil
}

// Match tells whether the todo passes the filter.
func (f Filter) Match(t *Todo) bool {
	switch f.Kind {
	case MetadataFilter:
		v, ok := t.Metadata[f.Key]
		if !ok {
			// key: with no value selects todos without that key.
			return (strings.TrimSpace(f.Value) == "") != f.Negate
		}
		return (v.String() == f.Value) != f.Negate
	case IDFilter:
		return strings.HasPrefix(t.ID, f.Value)
	case TagFilter:
		return hasTag(t, f.Value) != f.Negate
	case TextFilter:
		return strings.Contains(strings.ToLower(t.Title), strings.ToLower(f.Value))
	}
	return false
}

func hasTag(t *Todo, tag string) bool {
	for _, candidate := range t.Metadata.Tags() {
		if candidate == tag {
			return true
		}
	}
	return false
}

// Match tells whether the todo passes all filters.
func (filters Filters) Match(t *Todo) bool {
	for _, f := range filters {
		if !f.Match(t) {
			return false
		}
	}
	return true
}

// Apply returns the todos passing all filters, with local ids computed over that subset (and
// cleared on the todos left out).
func (filters Filters) Apply(todos []*Todo) []*Todo {
	result := make([]*Todo, 0, len(todos))
	for _, t := range todos {
		t.LocalID = ""
		if filters.Match(t) {
			result = append(result, t)
		}
	}
	AssignLocalIDs(result)
	return result
}

func cut(s, sep string) (before, after string, found bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
