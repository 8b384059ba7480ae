package inventory

import (
	"strings"

	"github.com/claude-list/claude-list/internal/agents"
	"github.com/claude-list/claude-list/internal/commands"
	"github.com/claude-list/claude-list/internal/hooks"
	"github.com/claude-list/claude-list/internal/mcp"
	"github.com/claude-list/claude-list/internal/plugins"
	"github.com/claude-list/claude-list/internal/skills"
)

// SearchFilter matches names against every keyword of a query,
// case-insensitively. A nil or empty filter matches everything.
type SearchFilter struct {
	keywords []string
}

// NewSearchFilter splits query on whitespace into lower-cased keywords.
func NewSearchFilter(query string) *SearchFilter {
	return &SearchFilter{keywords: strings.Fields(strings.ToLower(query))}
}

// Active reports whether the filter has any keyword.
func (s *SearchFilter) Active() bool {
	return s != nil && len(s.keywords) > 0
}

// Matches reports whether name contains every keyword.
func (s *SearchFilter) Matches(name string) bool {
	if !s.Active() {
		return true
	}
	lower := strings.ToLower(name)
	for _, kw := range s.keywords {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// FilterFlags selects which sections to keep. When no type is selected,
// every type is kept.
type FilterFlags struct {
	Plugins  bool
	Skills   bool
	Sessions bool
	MCP      bool
	Hooks    bool
	Agents   bool
	Commands bool

	Search *SearchFilter
}

func (f FilterFlags) anySelected() bool {
	return f.Plugins || f.Skills || f.Sessions || f.MCP || f.Hooks || f.Agents || f.Commands
}

// Filter returns a copy of r with deselected sections emptied and the
// remaining lists narrowed by the search filter. Sessions are never
// searched; a deselected session summary becomes zero.
func Filter(r *Report, f FilterFlags) *Report {
	all := !f.anySelected()
	out := &Report{
		Version:    r.Version,
		ConfigDir:  r.ConfigDir,
		Plugins:    keep(r.Plugins, all || f.Plugins, f.Search, func(p plugins.Plugin) string { return p.Name }),
		Skills:     keep(r.Skills, all || f.Skills, f.Search, func(s skills.Skill) string { return s.Name }),
		MCPServers: keep(r.MCPServers, all || f.MCP, f.Search, func(m mcp.Server) string { return m.Name }),
		Hooks:      keep(r.Hooks, all || f.Hooks, f.Search, func(h hooks.Hook) string { return h.Name }),
		Agents:     keep(r.Agents, all || f.Agents, f.Search, func(a agents.Agent) string { return a.Name }),
		Commands:   keep(r.Commands, all || f.Commands, f.Search, func(c commands.Command) string { return c.Name }),
	}
	if all || f.Sessions {
		out.Sessions = r.Sessions
	}
	return out
}

func keep[T any](items []T, selected bool, search *SearchFilter, name func(T) string) []T {
	out := []T{}
	if !selected {
		return out
	}
	for _, it := range items {
		if search.Matches(name(it)) {
			out = append(out, it)
		}
	}
	return out
}
