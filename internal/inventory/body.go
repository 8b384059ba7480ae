package inventory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude-list/claude-list/internal/decode"
)

// Document returns the Markdown to show for an item: the body of its .md
// file with the frontmatter removed, or its manifest in a code block.
func Document(it Item) (string, error) {
	switch it.Kind {
	case KindAgent, KindCommand, KindHook:
		return markdownBody(it.Path)
	case KindSkill:
		md := filepath.Join(it.Path, "SKILL.md")
		if _, err := os.Stat(md); err == nil {
			return markdownBody(md)
		}
		return codeBlock(filepath.Join(it.Path, "skill.yaml"), "yaml")
	case KindMCP:
		if _, err := os.Stat(filepath.Join(it.Path, "smithery.yaml")); err == nil {
			return codeBlock(filepath.Join(it.Path, "smithery.yaml"), "yaml")
		}
		if filepath.Ext(it.Path) == ".json" {
			return codeBlock(it.Path, "json")
		}
		return codeBlock(filepath.Join(it.Path, "package.json"), "json")
	case KindPlugin:
		return codeBlock(it.Path, "json")
	default:
		return "", fmt.Errorf("no document for %s %q", it.Kind, it.Name)
	}
}

func markdownBody(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if fm, ok := decode.SplitFrontmatter(string(data)); ok && fm.Closed {
		return fm.Body, nil
	}
	return string(data), nil
}

func codeBlock(path, lang string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return fmt.Sprintf("```%s\n%s\n```\n", lang, data), nil
}
