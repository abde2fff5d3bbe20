// Package markdown renders note text for the terminal.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Renderer formats markdown with an ASCII style, wrapping at a given width.
type Renderer struct {
	tr *glamour.TermRenderer
}

// New returns a renderer wrapping words at width columns. A width below 1 disables wrapping.
func New(width int) (*Renderer, error) {
	if width < 0 {
		width = 0
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	return &Renderer{tr: tr}, nil
}

// Render formats text. Blank text renders as the empty string.
func (r *Renderer) Render(text string) (string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	out, err := r.tr.Render(text)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
