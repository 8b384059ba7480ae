package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/claude-list/claude-list/internal/inventory"
	"github.com/claude-list/claude-list/internal/render"
)

// listItem adapts an inventory item to the bubbles list.
type listItem struct {
	item inventory.Item
}

func (l listItem) Title() string {
	if l.item.Kind == inventory.KindCommand {
		return "/" + l.item.Name
	}
	return l.item.Name
}

func (l listItem) Description() string {
	if l.item.Description == "" {
		return string(l.item.Kind)
	}
	return fmt.Sprintf("%s · %s", l.item.Kind, l.item.Description)
}

func (l listItem) FilterValue() string { return l.item.Name }

type pane int

const (
	paneList pane = iota
	paneDetail
)

// model is the Bubble Tea model for the browser.
type model struct {
	report *inventory.Report
	list   list.Model
	detail viewport.Model
	md     *render.MarkdownRenderer

	focus         pane
	width, height int
	ready         bool
	shown         int // index of the item in the detail pane, -1 for none
}

func newModel(r *inventory.Report, md *render.MarkdownRenderer) model {
	var items []list.Item
	for _, it := range r.Items() {
		items = append(items, listItem{item: it})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("claude-list v%s", r.Version)
	l.Styles.Title = titleStyle
	l.SetShowHelp(false)
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.Focus} }

	return model{
		report: r,
		list:   l,
		detail: viewport.New(0, 0),
		md:     md,
		shown:  -1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.ready = true
		m.shown = -1
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		// While the user types a filter, every key belongs to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Focus):
			if m.focus == paneList {
				m.focus = paneDetail
			} else {
				m.focus = paneList
			}
			return m, nil
		}
		if m.focus == paneDetail {
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}

	m.list, cmd = m.list.Update(msg)
	m.refreshDetail()
	return m, cmd
}

// resize splits the window between the list and the detail pane.
func (m *model) resize() {
	listWidth := m.width * 2 / 5
	if listWidth < 24 {
		listWidth = m.width
	}
	bodyHeight := m.height - 1 // help line

	m.list.SetSize(listWidth, bodyHeight)

	frameW, frameH := detailStyle.GetFrameSize()
	m.detail.Width = max(m.width-listWidth-frameW, 0)
	m.detail.Height = max(bodyHeight-frameH, 0)
	m.md.SetWidth(m.detail.Width)
}

// refreshDetail re-renders the detail pane when the selection changed.
func (m *model) refreshDetail() {
	idx := m.list.Index()
	if idx == m.shown && m.shown >= 0 {
		return
	}
	m.shown = idx

	sel, ok := m.list.SelectedItem().(listItem)
	if !ok {
		m.detail.SetContent(detailDimStyle.Render("Nothing found."))
		return
	}
	m.detail.SetContent(m.describe(sel.item))
	m.detail.GotoTop()
}

// describe renders the header fields and document of one item.
func (m *model) describe(it inventory.Item) string {
	var b strings.Builder
	b.WriteString(detailNameStyle.Render(it.Name))
	if it.Version != "" {
		b.WriteString(detailDimStyle.Render(" v" + it.Version))
	}
	b.WriteString("\n")
	if it.Description != "" {
		b.WriteString(it.Description + "\n")
	}
	b.WriteString("\n")

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", detailLabelStyle.Render(label+":"), value)
	}
	field("Type", string(it.Kind))
	for _, d := range it.Details {
		field(d[0], d[1])
	}
	field("Path", it.Path)

	if doc, err := inventory.Document(it); err == nil && strings.TrimSpace(doc) != "" {
		b.WriteString("\n")
		b.WriteString(m.md.Render(doc))
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}
	style := detailStyle
	if m.focus == paneDetail {
		style = detailFocusedStyle
	}
	body := m.list.View()
	if m.detail.Width > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, style.Render(m.detail.View()))
	}
	help := helpStyle.Render(fmt.Sprintf("%d items · / filter · tab switch pane · q quit", len(m.list.Items())))
	return body + "\n" + help
}
