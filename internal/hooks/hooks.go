// Package hooks reports hook definitions from hooks/*.md.
//
// The hook type comes from a "hook:" key in the file's frontmatter:
//
//	---
//	hook: pre-commit
//	description: Run linters before committing
//	---
//
// A frontmatter block that is never closed still counts; everything after
// the opening delimiter is scanned for keys.
package hooks

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/claude-list/claude-list/internal/component"
	"github.com/claude-list/claude-list/internal/decode"
	"github.com/claude-list/claude-list/internal/locate"
)

// UnknownType is reported for hooks without a hook: key.
const UnknownType = "unknown"

// Hook is one hook definition file.
type Hook struct {
	Name        string  `json:"name"`
	HookType    string  `json:"hook_type"`
	Path        string  `json:"path"`
	Description *string `json:"description,omitempty"`
}

// Locate finds the hooks directory under root.
func Locate(root string) locate.Source {
	return locate.First(root, locate.Dir("hooks"))
}

// Extract lists one hook per readable .md file, named after the file.
func Extract(src locate.Source, log *zap.Logger) []Hook {
	if src.Kind != locate.DirectoryOfItems {
		return nil
	}
	var out []Hook
	for _, path := range locate.MarkdownFiles(src.Path) {
		data, ok := component.ReadFile(log, path)
		if !ok {
			continue
		}
		out = append(out, parseHook(path, string(data)))
	}
	return out
}

func parseHook(path, content string) Hook {
	h := Hook{
		Name:     locate.BaseName(path),
		HookType: UnknownType,
		Path:     path,
	}
	fm, ok := decode.SplitFrontmatter(content)
	if !ok {
		return h
	}
	fields := decode.ScanKeys(fm.Text, "hook", "description")
	if t, ok := fields["hook"]; ok {
		h.HookType = t
	}
	h.Description = component.Lookup(fields, "description")
	return h
}

// Describe returns the hook's description, or its type.
func (h Hook) Describe() string {
	if h.Description != nil {
		return *h.Description
	}
	return fmt.Sprintf("%s hook", h.HookType)
}
