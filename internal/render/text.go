// Package render formats an inventory report as compact text, column
// aligned text, or JSON.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claude-list/claude-list/internal/inventory"
)

const (
	titleWidth   = 11
	nameWidth    = 30
	versionWidth = 18
	sourceWidth  = 15
	missing      = "-"
	indent       = "  "
)

// column is one column of a detailed table. A zero width leaves the
// column unpadded, which only makes sense for the last one.
type column struct {
	header string
	width  int
	right  bool
	style  *lipgloss.Style
}

// section is one component type, ready for either layout.
type section struct {
	title   string
	summary string
	style   lipgloss.Style

	names   []string   // compact lines
	notes   []string   // detailed lines printed instead of a table
	columns []column   // detailed table
	rows    [][]string // detailed table cells, unstyled
}

// Compact writes the header and, for every non-empty section, its title
// and one name per line.
func Compact(w io.Writer, r *inventory.Report, th Theme) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw, r, th)
	for _, s := range sections(r, th) {
		writeTitle(bw, s)
		for _, name := range s.names {
			fmt.Fprintf(bw, "%s%s\n", indent, s.style.Render(name))
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// Detailed writes the header and, for every non-empty section, its title
// and a column-aligned table.
func Detailed(w io.Writer, r *inventory.Report, th Theme) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw, r, th)
	for _, s := range sections(r, th) {
		writeTitle(bw, s)
		for _, note := range s.notes {
			fmt.Fprintf(bw, "%s%s\n", indent, note)
		}
		if len(s.columns) > 0 {
			headers := make([]string, len(s.columns))
			for i, c := range s.columns {
				headers[i] = c.header
			}
			writeRow(bw, s.columns, headers, &th.Dim)
			for _, row := range s.rows {
				writeRow(bw, s.columns, row, nil)
			}
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

func writeHeader(w io.Writer, r *inventory.Report, th Theme) {
	fmt.Fprintln(w, th.Header.Render("CLAUDE-LIST v"+r.Version))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", th.Header.Render("CONFIG:"), r.ConfigDir)
	fmt.Fprintln(w)
}

func writeTitle(w io.Writer, s section) {
	title := s.style.Bold(true).Render(s.title)
	fmt.Fprintf(w, "%s%s\n", padRight(title, titleWidth), s.summary)
}

// writeRow writes one table line. Cells are styled by their column unless
// override is set, and padded by their visible width.
func writeRow(w io.Writer, cols []column, cells []string, override *lipgloss.Style) {
	var b strings.Builder
	b.WriteString(indent)
	for i, c := range cols {
		cell := cells[i]
		if cell == "" {
			cell = missing
		}
		switch {
		case override != nil:
			cell = override.Render(cell)
		case c.style != nil:
			cell = c.style.Render(cell)
		}
		switch {
		case c.width == 0:
		case c.right:
			cell = padLeft(cell, c.width)
		default:
			cell = padRight(cell, c.width)
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cell)
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// sections builds the non-empty sections of r in display order.
func sections(r *inventory.Report, th Theme) []section {
	var out []section
	nameCol := func(style lipgloss.Style) column {
		return column{header: "NAME", width: nameWidth, style: &style}
	}
	versionCol := column{header: "VERSION", width: versionWidth, right: true, style: &th.Version}
	sourceCol := column{header: "SOURCE", width: sourceWidth}
	pathCol := column{header: "PATH"}

	if n := len(r.Plugins); n > 0 {
		s := section{title: "PLUGINS", summary: fmt.Sprintf("%d installed", n), style: th.Plugin,
			columns: []column{nameCol(th.Plugin), versionCol, sourceCol, pathCol}}
		for _, p := range r.Plugins {
			s.names = append(s.names, p.Name)
			s.rows = append(s.rows, []string{p.Name, deref(p.Version), p.Source.String(), p.Path})
		}
		out = append(out, s)
	}

	if n := len(r.Skills); n > 0 {
		s := section{title: "SKILLS", summary: fmt.Sprintf("%d available", n), style: th.Skill,
			columns: []column{nameCol(th.Skill), versionCol, sourceCol, pathCol}}
		for _, sk := range r.Skills {
			s.names = append(s.names, sk.Name)
			s.rows = append(s.rows, []string{sk.Name, deref(sk.Version), sk.Source.String(), sk.Path})
		}
		out = append(out, s)
	}

	if n := r.Sessions.Count; n > 0 {
		last := deref(r.Sessions.LastSession)
		if last == "" {
			last = missing
		}
		out = append(out, section{title: "SESSIONS", summary: fmt.Sprintf("%d recorded", n), style: th.Session,
			notes: []string{"Last session: " + last}})
	}

	if n := len(r.MCPServers); n > 0 {
		s := section{title: "MCP", summary: fmt.Sprintf("%d servers", n), style: th.MCP,
			columns: []column{nameCol(th.MCP), {header: "STATUS", width: sourceWidth}, pathCol}}
		for _, m := range r.MCPServers {
			s.names = append(s.names, m.Name)
			s.rows = append(s.rows, []string{m.Name, m.Status, m.Path})
		}
		out = append(out, s)
	}

	if n := len(r.Hooks); n > 0 {
		s := section{title: "HOOKS", summary: fmt.Sprintf("%d configured", n), style: th.Hook,
			columns: []column{nameCol(th.Hook), {header: "TYPE", width: sourceWidth}, pathCol}}
		for _, h := range r.Hooks {
			s.names = append(s.names, h.Name)
			s.rows = append(s.rows, []string{h.Name, h.HookType, h.Path})
		}
		out = append(out, s)
	}

	if n := len(r.Agents); n > 0 {
		s := section{title: "AGENTS", summary: fmt.Sprintf("%d defined", n), style: th.Agent,
			columns: []column{nameCol(th.Agent), {header: "DESCRIPTION"}}}
		for _, a := range r.Agents {
			s.names = append(s.names, a.Name)
			s.rows = append(s.rows, []string{a.Name, a.Describe()})
		}
		out = append(out, s)
	}

	if n := len(r.Commands); n > 0 {
		s := section{title: "COMMANDS", summary: fmt.Sprintf("%d available", n), style: th.Command,
			columns: []column{nameCol(th.Command), {header: "DESCRIPTION"}}}
		for _, c := range r.Commands {
			s.names = append(s.names, "/"+c.Name)
			s.rows = append(s.rows, []string{"/" + c.Name, c.Describe()})
		}
		out = append(out, s)
	}
	return out
}
