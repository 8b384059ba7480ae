// Package tui is an interactive browser over an inventory report: a
// filterable list of every record beside a detail pane that renders the
// record's document.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/claude-list/claude-list/internal/inventory"
	"github.com/claude-list/claude-list/internal/render"
)

// AppConfig bundles everything the browser needs.
type AppConfig struct {
	Report *inventory.Report
	Color  bool
}

// App is the browser. The CLI creates it and calls Run.
type App struct {
	cfg AppConfig
}

// New creates a browser.
func New(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

// Run starts the Bubble Tea program on the alternate screen and blocks
// until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	m := newModel(a.cfg.Report, render.NewMarkdownRenderer(80, a.cfg.Color))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
