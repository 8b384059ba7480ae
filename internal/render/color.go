package render

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorSettings decides whether output is colored.
type ColorSettings struct {
	NoColor bool // --no-color
	Force   bool // --color
}

// Enabled applies, in order: --no-color, --color, the NO_COLOR environment
// variable (any value, even empty), and finally whether out is a terminal.
func (c ColorSettings) Enabled(out io.Writer) bool {
	if c.NoColor {
		return false
	}
	if c.Force {
		return true
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return IsTerminal(out)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of w, or fallback when w is not a
// terminal.
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
