// Package agents reports subagent definitions from agents/*.md.
package agents

import (
	"go.uber.org/zap"

	"github.com/claude-list/claude-list/internal/component"
	"github.com/claude-list/claude-list/internal/decode"
	"github.com/claude-list/claude-list/internal/locate"
)

// Agent is one agent definition file.
type Agent struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	Description *string `json:"description"`
	Model       *string `json:"model,omitempty"`
	Tools       *string `json:"tools,omitempty"`
}

// Locate finds the agents directory under root.
func Locate(root string) locate.Source {
	return locate.First(root, locate.Dir("agents"))
}

// Extract lists one agent per readable .md file.
func Extract(src locate.Source, log *zap.Logger) []Agent {
	if src.Kind != locate.DirectoryOfItems {
		return nil
	}
	var out []Agent
	for _, path := range locate.MarkdownFiles(src.Path) {
		data, ok := component.ReadFile(log, path)
		if !ok {
			continue
		}
		out = append(out, parseAgent(path, string(data)))
	}
	return out
}

// parseAgent reads the name, description, model and tools keys. The name
// falls back to the file's base name.
func parseAgent(path, content string) Agent {
	a := Agent{Name: locate.BaseName(path), Path: path}
	fm, ok := decode.SplitFrontmatter(content)
	if !ok {
		return a
	}
	fields := decode.ScanKeys(fm.Text, "name", "description", "model", "tools")
	if name := fields["name"]; name != "" {
		a.Name = name
	}
	a.Description = component.Lookup(fields, "description")
	a.Model = component.Lookup(fields, "model")
	a.Tools = component.Lookup(fields, "tools")
	return a
}

// Describe returns the agent's description.
func (a Agent) Describe() string {
	if a.Description == nil {
		return ""
	}
	return *a.Description
}
