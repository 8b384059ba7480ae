// Package inventory assembles every component type found under one
// configuration root into a single Report.
package inventory

import (
	"fmt"
	"strings"

	"github.com/claude-list/claude-list/internal/agents"
	"github.com/claude-list/claude-list/internal/commands"
	"github.com/claude-list/claude-list/internal/hooks"
	"github.com/claude-list/claude-list/internal/mcp"
	"github.com/claude-list/claude-list/internal/plugins"
	"github.com/claude-list/claude-list/internal/session"
	"github.com/claude-list/claude-list/internal/skills"
)

// Report is everything found under one configuration root. It is built
// once by Aggregate and only read afterwards.
type Report struct {
	Version    string             `json:"version"`
	ConfigDir  string             `json:"config_dir"`
	Plugins    []plugins.Plugin   `json:"plugins"`
	Skills     []skills.Skill     `json:"skills"`
	Sessions   session.Summary    `json:"sessions"`
	MCPServers []mcp.Server       `json:"mcp_servers"`
	Hooks      []hooks.Hook       `json:"hooks"`
	Agents     []agents.Agent     `json:"agents"`
	Commands   []commands.Command `json:"commands"`
}

// normalize replaces nil lists with empty ones so they encode as [].
func (r *Report) normalize() {
	r.Plugins = orEmpty(r.Plugins)
	r.Skills = orEmpty(r.Skills)
	r.MCPServers = orEmpty(r.MCPServers)
	r.Hooks = orEmpty(r.Hooks)
	r.Agents = orEmpty(r.Agents)
	r.Commands = orEmpty(r.Commands)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Kind names a listable component type.
type Kind string

const (
	KindPlugin  Kind = "plugin"
	KindSkill   Kind = "skill"
	KindMCP     Kind = "mcp"
	KindHook    Kind = "hook"
	KindAgent   Kind = "agent"
	KindCommand Kind = "command"
)

// Kinds lists every Kind in report order.
var Kinds = []Kind{KindPlugin, KindSkill, KindMCP, KindHook, KindAgent, KindCommand}

// ParseKind accepts a kind name, its plural, or "mcp-server".
func ParseKind(s string) (Kind, error) {
	k := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	switch k {
	case "mcp-server", "server":
		return KindMCP, nil
	}
	for _, kind := range Kinds {
		if Kind(k) == kind {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown component type %q", s)
}

// Item is the common view of one record, used by the browser and the show
// command.
type Item struct {
	Kind        Kind
	Name        string
	Version     string
	Description string
	Path        string
	// Details are extra label/value pairs in display order.
	Details [][2]string
}

// Items flattens the report's records in report order.
func (r *Report) Items() []Item {
	var items []Item
	for _, p := range r.Plugins {
		it := Item{Kind: KindPlugin, Name: p.Name, Version: deref(p.Version), Description: p.Describe(), Path: p.Path}
		it.Details = appendDetail(it.Details, "Source", p.Source.String())
		it.Details = appendDetail(it.Details, "Marketplace", p.Marketplace)
		it.Details = appendDetail(it.Details, "Install path", p.InstallPath)
		items = append(items, it)
	}
	for _, s := range r.Skills {
		it := Item{Kind: KindSkill, Name: s.Name, Version: deref(s.Version), Description: deref(s.Description), Path: s.Path}
		it.Details = appendDetail(it.Details, "Source", s.Source.String())
		it.Details = appendDetail(it.Details, "Location", s.Location.String())
		items = append(items, it)
	}
	for _, m := range r.MCPServers {
		it := Item{Kind: KindMCP, Name: m.Name, Version: deref(m.Version), Description: m.Describe(), Path: m.Path}
		it.Details = appendDetail(it.Details, "Status", m.Status)
		it.Details = appendDetail(it.Details, "Command", deref(m.Command))
		items = append(items, it)
	}
	for _, h := range r.Hooks {
		it := Item{Kind: KindHook, Name: h.Name, Description: h.Describe(), Path: h.Path}
		it.Details = appendDetail(it.Details, "Type", h.HookType)
		items = append(items, it)
	}
	for _, a := range r.Agents {
		it := Item{Kind: KindAgent, Name: a.Name, Description: a.Describe(), Path: a.Path}
		it.Details = appendDetail(it.Details, "Model", deref(a.Model))
		it.Details = appendDetail(it.Details, "Tools", deref(a.Tools))
		items = append(items, it)
	}
	for _, c := range r.Commands {
		it := Item{Kind: KindCommand, Name: c.Name, Description: c.Describe(), Path: c.Path}
		it.Details = appendDetail(it.Details, "Allowed tools", deref(c.AllowedTools))
		it.Details = appendDetail(it.Details, "Arguments", deref(c.ArgumentHint))
		items = append(items, it)
	}
	return items
}

// Find returns the first item of kind named name.
func (r *Report) Find(kind Kind, name string) (Item, bool) {
	for _, it := range r.Items() {
		if it.Kind == kind && it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

func appendDetail(details [][2]string, label, value string) [][2]string {
	if value == "" {
		return details
	}
	return append(details, [2]string{label, value})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
