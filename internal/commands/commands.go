// Package commands reports custom slash commands from commands/*.md.
package commands

import (
	"go.uber.org/zap"

	"github.com/claude-list/claude-list/internal/component"
	"github.com/claude-list/claude-list/internal/decode"
	"github.com/claude-list/claude-list/internal/locate"
)

// Command is one slash command definition file.
type Command struct {
	Name         string  `json:"name"`
	Path         string  `json:"path"`
	Description  *string `json:"description"`
	AllowedTools *string `json:"allowed_tools"`
	ArgumentHint *string `json:"argument_hint"`
}

// Locate finds the commands directory under root.
func Locate(root string) locate.Source {
	return locate.First(root, locate.Dir("commands"))
}

// Extract lists one command per readable .md file.
func Extract(src locate.Source, log *zap.Logger) []Command {
	if src.Kind != locate.DirectoryOfItems {
		return nil
	}
	var out []Command
	for _, path := range locate.MarkdownFiles(src.Path) {
		data, ok := component.ReadFile(log, path)
		if !ok {
			continue
		}
		out = append(out, parseCommand(path, string(data)))
	}
	return out
}

func parseCommand(path, content string) Command {
	c := Command{Name: locate.BaseName(path), Path: path}
	fm, ok := decode.SplitFrontmatter(content)
	if !ok {
		return c
	}
	fields := decode.ScanKeys(fm.Text, "name", "description", "allowed-tools", "argument-hint")
	if name := fields["name"]; name != "" {
		c.Name = name
	}
	c.Description = component.Lookup(fields, "description")
	c.AllowedTools = component.Lookup(fields, "allowed-tools")
	c.ArgumentHint = component.Lookup(fields, "argument-hint")
	return c
}

// Describe returns the command's description.
func (c Command) Describe() string {
	if c.Description == nil {
		return ""
	}
	return *c.Description
}
