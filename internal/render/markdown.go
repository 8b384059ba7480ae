package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders Markdown bodies of skills, agents, commands and
// hooks for the terminal.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
	color    bool
}

// NewMarkdownRenderer creates a renderer wrapping at width. Without color
// it uses glamour's plain style.
func NewMarkdownRenderer(width int, color bool) *MarkdownRenderer {
	m := &MarkdownRenderer{color: color}
	m.SetWidth(width)
	return m
}

// Render converts md to styled output. On failure md is returned as is.
func (m *MarkdownRenderer) Render(md string) string {
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	// glamour adds surrounding blank lines.
	return strings.Trim(out, "\n")
}

// SetWidth recreates the renderer for a new width.
func (m *MarkdownRenderer) SetWidth(width int) {
	switch {
	case width <= 0:
		width = 80
	case width < 24:
		width = 24
	}
	if width == m.width && m.renderer != nil {
		return
	}
	style := glamour.WithAutoStyle()
	if !m.color {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return
	}
	m.renderer = r
	m.width = width
}
