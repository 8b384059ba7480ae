// Package skills reports installed skills.
//
// A skill is a directory. Its metadata comes from the YAML frontmatter of
// SKILL.md when that file exists, and from a skill.yaml sidecar otherwise.
// Skills are found in:
//   - <root>/skills/*/          (global)
//   - <install path>/skills/*/  (shipped inside an installed plugin)
package skills

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/claude-list/claude-list/internal/component"
	"github.com/claude-list/claude-list/internal/decode"
	"github.com/claude-list/claude-list/internal/locate"
)

const (
	skillMarkdown = "SKILL.md"
	skillSidecar  = "skill.yaml"
)

// Skill is one skill directory.
type Skill struct {
	Name        string               `json:"name"`
	Version     *string              `json:"version"`
	Source      component.Provenance `json:"source"`
	Path        string               `json:"path"`
	Description *string              `json:"description"`
	Location    component.Location   `json:"location_type"`
}

// PluginDir is an installed plugin whose skills directory is scanned too.
type PluginDir struct {
	Plugin string
	Source component.Provenance
	Path   string // the plugin's install path
}

// Locate finds the global skills directory under root.
func Locate(root string) locate.Source {
	return locate.First(root, locate.Dir("skills"))
}

// Extract lists global skills from src followed by the skills of each
// plugin, in the order given.
func Extract(src locate.Source, plugins []PluginDir, log *zap.Logger) []Skill {
	var skills []Skill
	if src.Kind == locate.DirectoryOfItems {
		skills = append(skills, loadSkillsFromDir(src.Path, nil, log)...)
	}
	for i := range plugins {
		dir := filepath.Join(plugins[i].Path, "skills")
		skills = append(skills, loadSkillsFromDir(dir, &plugins[i], log)...)
	}
	return skills
}

// loadSkillsFromDir turns every subdirectory of dir into a skill. The name
// always comes from the directory, whatever the metadata says.
func loadSkillsFromDir(dir string, owner *PluginDir, log *zap.Logger) []Skill {
	var skills []Skill
	for _, skillDir := range locate.Subdirs(dir) {
		name := filepath.Base(skillDir)
		meta := readMetadata(skillDir, log)

		s := Skill{
			Name:        name,
			Version:     component.Lookup(meta, "version"),
			Description: component.Lookup(meta, "description"),
			Path:        skillDir,
			Source:      globalProvenance(name),
			Location:    component.Global,
		}
		if owner != nil {
			s.Source = owner.Source
			s.Location = component.InPlugin(owner.Plugin)
		}
		skills = append(skills, s)
	}
	return skills
}

// readMetadata returns the skill's top-level YAML scalars. SKILL.md wins
// whenever it exists, even if it has no usable frontmatter; skill.yaml is
// only consulted when SKILL.md is absent.
func readMetadata(skillDir string, log *zap.Logger) map[string]string {
	mdPath := filepath.Join(skillDir, skillMarkdown)
	if locate.Exists(mdPath) {
		data, ok := component.ReadFile(log, mdPath)
		if !ok {
			return nil
		}
		fm, ok := decode.SplitFrontmatter(string(data))
		if !ok {
			return nil
		}
		fields, err := decode.YAMLScalars([]byte(fm.Text))
		if err != nil {
			component.Skipped(log, mdPath, err)
			return nil
		}
		return fields
	}

	yamlPath := filepath.Join(skillDir, skillSidecar)
	data, ok := component.ReadFile(log, yamlPath)
	if !ok {
		return nil
	}
	fields, err := decode.YAMLScalars(data)
	if err != nil {
		component.Skipped(log, yamlPath, err)
		return nil
	}
	return fields
}

// globalProvenance classifies skills from the root's skills directory:
// names with a leading underscore or a hyphen are third-party.
func globalProvenance(name string) component.Provenance {
	if strings.HasPrefix(name, "_") || strings.Contains(name, "-") {
		return component.ThirdParty
	}
	return component.Official
}
