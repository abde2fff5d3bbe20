package table

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	separator = "│"
	rule      = "─"
	crossing  = "┼"
	ellipsis  = "…"

	titleFloor = 4
	tagsFloor  = 6
)

// dropOrder lists the columns that can be removed when the table is too wide, first to go first.
var dropOrder = []string{headerUrgency, headerBlocking, headerBlocked}

// limits are the maximum widths of the title and tag columns; zero means no limit.
type limits struct {
	title int
	tags  int
}

func (l limits) atFloor() bool {
	return l.title <= titleFloor && l.tags <= tagsFloor
}

func (l limits) shrink() limits {
	if l.title > titleFloor {
		l.title--
	}
	if l.tags > tagsFloor {
		l.tags--
	}
	return l
}

// fit draws the table and, while it is wider than width, tries again with fewer columns and then
// with narrower title and tag columns, until it fits or there is nothing left to reduce.
func fit(columns []column, width int) string {
	out := draw(columns, limits{})
	if width <= 0 || measure(out) <= width {
		return out
	}
	for _, header := range dropOrder {
		reduced := without(columns, header)
		if len(reduced) == len(columns) {
			continue
		}
		columns = reduced
		out = draw(columns, limits{})
		if measure(out) <= width {
			return out
		}
	}
	l := limits{title: max(width/2, titleFloor), tags: max(width/4, tagsFloor)}
	for {
		out = draw(columns, l)
		if measure(out) <= width || l.atFloor() {
			return out
		}
		l = l.shrink()
	}
}

func without(columns []column, header string) []column {
	kept := make([]column, 0, len(columns))
	for _, c := range columns {
		if c.header != header {
			kept = append(kept, c)
		}
	}
	return kept
}

// measure returns the width of the widest line, escape sequences excluded.
func measure(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

func draw(columns []column, l limits) string {
	// Split cells into lines, truncating where limited.
	lines := make([][][]string, len(columns)) // column, row (header first), line
	widths := make([]int, len(columns))
	for i, c := range columns {
		limit := 0
		switch c.header {
		case headerTitle:
			limit = l.title
		case headerTags:
			limit = l.tags
		}
		cells := append([]string{c.header}, c.cells...)
		lines[i] = make([][]string, len(cells))
		for j, cell := range cells {
			for _, line := range strings.Split(cell, "\n") {
				if limit > 0 && ansi.PrintableRuneWidth(line) > limit {
					line = truncate.StringWithTail(line, uint(limit), ellipsis)
				}
				if w := ansi.PrintableRuneWidth(line); w > widths[i] {
					widths[i] = w
				}
				lines[i][j] = append(lines[i][j], line)
			}
		}
	}

	var b strings.Builder
	rows := len(columns[0].cells) + 1
	for j := 0; j < rows; j++ {
		height := 0
		for i := range columns {
			if n := len(lines[i][j]); n > height {
				height = n
			}
		}
		for k := 0; k < height; k++ {
			for i := range columns {
				if i > 0 {
					b.WriteString(separator)
				}
				var line string
				if k < len(lines[i][j]) {
					line = lines[i][j][k]
				}
				b.WriteString(line)
				if i < len(columns)-1 {
					b.WriteString(strings.Repeat(" ", widths[i]-ansi.PrintableRuneWidth(line)))
				}
			}
			b.WriteByte('\n')
		}
		if j == 0 {
			for i := range columns {
				if i > 0 {
					b.WriteString(crossing)
				}
				b.WriteString(strings.Repeat(rule, widths[i]))
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
