package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styles for one run. Colors are the terminal's own ANSI
// palette so they follow the user's color scheme.
type Theme struct {
	Header  lipgloss.Style
	Dim     lipgloss.Style
	Version lipgloss.Style

	Plugin  lipgloss.Style
	Skill   lipgloss.Style
	Session lipgloss.Style
	MCP     lipgloss.Style
	Hook    lipgloss.Style
	Agent   lipgloss.Style
	Command lipgloss.Style
}

var (
	colorRed          = lipgloss.Color("1")
	colorGreen        = lipgloss.Color("2")
	colorYellow       = lipgloss.Color("3")
	colorBlue         = lipgloss.Color("4")
	colorMagenta      = lipgloss.Color("5")
	colorCyan         = lipgloss.Color("6")
	colorBrightBlack  = lipgloss.Color("8")
	colorBrightYellow = lipgloss.Color("11")
)

// NewTheme returns the color theme, or a plain one when color is false.
// The choice is made here rather than by lipgloss's own terminal probing,
// so --color works when stdout is a pipe.
func NewTheme(color bool) Theme {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Theme{
		Header:  r.NewStyle().Bold(true),
		Dim:     r.NewStyle().Foreground(colorBrightBlack),
		Version: r.NewStyle().Foreground(colorBrightBlack),

		Plugin:  r.NewStyle().Foreground(colorBlue),
		Skill:   r.NewStyle().Foreground(colorGreen),
		Session: r.NewStyle().Foreground(colorCyan),
		MCP:     r.NewStyle().Foreground(colorYellow),
		Hook:    r.NewStyle().Foreground(colorMagenta),
		Agent:   r.NewStyle().Foreground(colorRed),
		Command: r.NewStyle().Foreground(colorBrightYellow),
	}
}
