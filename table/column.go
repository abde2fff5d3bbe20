package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/nicolagi/tjp/todo"
)

const annotationLayout = "2006-01-02 15:04"

// Column headers. The ones in dropOrder may be removed to save width.
const (
	headerID       = "ID"
	headerTitle    = "title"
	headerPriority = "P"
	headerProject  = "Proj"
	headerTags     = "Tag"
	headerDue      = "Due"
	headerUrgency  = "Urg"
	headerDepends  = "Dep"
	headerBlocked  = "Blkd"
	headerBlocking = "Blkg"
)

// column is a header and one cell per row. Cells may span several lines and contain escape
// sequences.
type column struct {
	header string
	cells  []string
}

type styles struct {
	color     bool
	localID   lipgloss.Style
	faint     lipgloss.Style
	overdue   lipgloss.Style
	completed [2]string // Around completed titles when color is off.
}

func newStyles(color bool) styles {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	s := styles{
		color:   color,
		localID: r.NewStyle().Foreground(lipgloss.Color("14")),
		faint:   r.NewStyle().Faint(true),
		overdue: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
	if !color {
		s.completed = [2]string{"<F>", "</F>"}
	}
	return s
}

func buildColumns(rows []scored, lookup map[string]*todo.Todo, s styles) []column {
	columns := []column{
		idColumn(rows, s),
		textColumn(headerTitle, rows, func(t *todo.Todo) string { return titleCell(t, s) }),
	}
	if anyHas(rows, "priority") {
		columns = append(columns, textColumn(headerPriority, rows, func(t *todo.Todo) string {
			return t.Metadata.Text("priority")
		}))
	}
	if anyHas(rows, "project") {
		columns = append(columns, textColumn(headerProject, rows, func(t *todo.Todo) string {
			return t.Metadata.Text("project")
		}))
	}
	if anyHas(rows, "tags") {
		columns = append(columns, textColumn(headerTags, rows, func(t *todo.Todo) string {
			return strings.Join(t.Metadata.Tags(), " ")
		}))
	}
	if anyHas(rows, "due") {
		columns = append(columns, textColumn(headerDue, rows, func(t *todo.Todo) string {
			due, ok := t.Metadata.Due()
			if !ok {
				return ""
			}
			if t.Overdue {
				return s.overdue.Render(due.String())
			}
			return due.String()
		}))
	}
	urgencies := make([]string, len(rows))
	for i, row := range rows {
		urgencies[i] = fmt.Sprintf("%.1f", row.urgency)
	}
	columns = append(columns, column{header: headerUrgency, cells: urgencies})
	if anyHas(rows, "depends") {
		columns = append(columns, textColumn(headerDepends, rows, func(t *todo.Todo) string {
			return dependsCell(t, lookup)
		}))
	}
	if anyTagged(rows) {
		columns = append(columns,
			textColumn(headerBlocked, rows, func(t *todo.Todo) string { return boolCell(t.Blocked, s) }),
			textColumn(headerBlocking, rows, func(t *todo.Todo) string { return boolCell(t.Blocking, s) }),
		)
	}
	return columns
}

func textColumn(header string, rows []scored, cell func(*todo.Todo) string) column {
	c := column{header: header, cells: make([]string, len(rows))}
	for i, row := range rows {
		c.cells[i] = cell(row.todo)
	}
	return c
}

func anyHas(rows []scored, key string) bool {
	for _, row := range rows {
		if row.todo.Metadata.Has(key) {
			return true
		}
	}
	return false
}

func anyTagged(rows []scored) bool {
	for _, row := range rows {
		if row.todo.Tagged() {
			return true
		}
	}
	return false
}

// displayID falls back to the full id for todos without a local id, e.g., one being added.
func displayID(t *todo.Todo) string {
	if t.LocalID != "" {
		return t.LocalID
	}
	return t.ID
}

// idColumn highlights the local id and, with color, follows it with enough of the full id to
// line up with the longest local id.
func idColumn(rows []scored, s styles) column {
	widest := 0
	for _, row := range rows {
		if n := len(displayID(row.todo)); n > widest {
			widest = n
		}
	}
	c := column{header: headerID, cells: make([]string, len(rows))}
	for i, row := range rows {
		local := displayID(row.todo)
		if !s.color {
			c.cells[i] = local
			continue
		}
		end := widest
		if end > len(row.todo.ID) {
			end = len(row.todo.ID)
		}
		cell := s.localID.Render(local)
		if end > len(local) {
			cell += s.faint.Render(row.todo.ID[len(local):end])
		}
		c.cells[i] = cell
	}
	return c
}

func titleCell(t *todo.Todo, s styles) string {
	var b strings.Builder
	if t.IsCompleted() {
		b.WriteString(s.completed[0])
		b.WriteString(s.faint.Render(t.Title))
		b.WriteString(s.completed[1])
	} else {
		b.WriteString(t.Title)
	}
	for _, a := range t.Annotations() {
		b.WriteString("\n ")
		b.WriteString(s.faint.Render(a.Time.Format(annotationLayout)))
		b.WriteByte(':')
		b.WriteString(a.Text)
	}
	return b.String()
}

// dependsCell shows dependencies by local id; known todos without a local id (not displayed) by
// their first characters and an ellipsis, unknown ones by their first characters and a question
// mark.
func dependsCell(t *todo.Todo, lookup map[string]*todo.Todo) string {
	var refs []string
	for _, id := range t.Metadata.Depends() {
		short := id
		if len(short) > 4 {
			short = short[:4]
		}
		switch dep, ok := lookup[id]; {
		case !ok:
			refs = append(refs, short+"?")
		case dep.LocalID != "":
			refs = append(refs, dep.LocalID)
		default:
			refs = append(refs, short+"…")
		}
	}
	return strings.Join(refs, " ")
}

func boolCell(b bool, s styles) string {
	if b {
		return "T"
	}
	return s.faint.Render("F")
}
