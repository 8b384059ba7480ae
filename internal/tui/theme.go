package tui

import "github.com/charmbracelet/lipgloss"

// Browser styles.
var (
	colorPurple = lipgloss.Color("#A855F7")
	colorDim    = lipgloss.Color("#6B7280")
	colorCyan   = lipgloss.Color("#06B6D4")
	colorWhite  = lipgloss.Color("#F9FAFB")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	// Detail pane border; brighter while the pane has focus.
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	detailFocusedStyle = detailStyle.
				BorderForeground(colorPurple)

	detailNameStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(colorCyan)

	detailDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
