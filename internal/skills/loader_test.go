package skills

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/claude-list/claude-list/internal/component"
	"github.com/claude-list/claude-list/internal/locate"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestLoadSkill_MarkdownFrontmatter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "skills", "commit", "SKILL.md"), `---
name: something-else
description: Create a git commit
version: 1.2.0
---

# Commit Skill
`)

	skills := Extract(Locate(root), nil, nil)
	if len(skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(skills))
	}
	s := skills[0]
	if s.Name != "commit" {
		t.Errorf("Name = %q, want %q (directory name)", s.Name, "commit")
	}
	if deref(s.Description) != "Create a git commit" {
		t.Errorf("Description = %q", deref(s.Description))
	}
	if deref(s.Version) != "1.2.0" {
		t.Errorf("Version = %q", deref(s.Version))
	}
	if s.Path != filepath.Join(root, "skills", "commit") {
		t.Errorf("Path = %q", s.Path)
	}
	if !s.Location.IsGlobal() {
		t.Errorf("Location = %v, want global", s.Location)
	}
	if s.Source != component.Official {
		t.Errorf("Source = %v, want official", s.Source)
	}
}

func TestLoadSkill_MarkdownBeatsSidecar(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "skills", "x")
	writeFile(t, filepath.Join(dir, "SKILL.md"), "---\ndescription: A\n---\n")
	writeFile(t, filepath.Join(dir, "skill.yaml"), "description: B\nversion: 9.9.9\n")

	skills := Extract(Locate(root), nil, nil)
	if len(skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(skills))
	}
	if deref(skills[0].Description) != "A" {
		t.Errorf("Description = %q, want %q", deref(skills[0].Description), "A")
	}
	if skills[0].Version != nil {
		t.Errorf("Version = %q, want nil: skill.yaml is ignored when SKILL.md exists", *skills[0].Version)
	}
}

func TestLoadSkill_SidecarOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "skills", "review", "skill.yaml"), "description: Review code\nversion: \"2\"\n")

	skills := Extract(Locate(root), nil, nil)
	if len(skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(skills))
	}
	if deref(skills[0].Description) != "Review code" || deref(skills[0].Version) != "2" {
		t.Errorf("unexpected metadata: %q %q", deref(skills[0].Description), deref(skills[0].Version))
	}
}

func TestLoadSkill_NoMetadata(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "skills", "bare"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "skills", "plain", "SKILL.md"), "# no frontmatter\n")
	writeFile(t, filepath.Join(root, "skills", "broken", "SKILL.md"), "---\ndescription: [unclosed\n---\n")
	// Loose files in skills/ are not skills.
	writeFile(t, filepath.Join(root, "skills", "README.md"), "hi")

	skills := Extract(Locate(root), nil, nil)
	if len(skills) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(skills))
	}
	want := []string{"bare", "broken", "plain"}
	for i, s := range skills {
		if s.Name != want[i] {
			t.Errorf("skills[%d].Name = %q, want %q", i, s.Name, want[i])
		}
		if s.Description != nil || s.Version != nil {
			t.Errorf("%s: expected no metadata", s.Name)
		}
	}
}

func TestLoadSkill_EmptyMetadataIsNotMalformed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "skills", "a", "SKILL.md"), "---\n---\n# body\n")
	writeFile(t, filepath.Join(root, "skills", "b", "skill.yaml"), "")
	writeFile(t, filepath.Join(root, "skills", "c", "skill.yaml"), "# nothing yet\n")

	core, logs := observer.New(zapcore.DebugLevel)
	skills := Extract(Locate(root), nil, zap.New(core))
	if len(skills) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(skills))
	}
	for _, s := range skills {
		if s.Description != nil || s.Version != nil {
			t.Errorf("%s: expected no metadata", s.Name)
		}
	}
	if n := logs.FilterMessage("malformed file skipped").Len(); n != 0 {
		t.Errorf("expected no skipped files, got %d: %v", n, logs.All())
	}
}

func TestGlobalProvenance(t *testing.T) {
	tests := []struct {
		name string
		want component.Provenance
	}{
		{"commit", component.Official},
		{"_private", component.ThirdParty},
		{"my-skill", component.ThirdParty},
		{"pdf_tools", component.Official},
	}
	for _, tt := range tests {
		if got := globalProvenance(tt.name); got != tt.want {
			t.Errorf("globalProvenance(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPluginSkills(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "skills", "global", "SKILL.md"), "---\ndescription: g\n---\n")

	install := filepath.Join(root, "plugins", "cache", "superpowers")
	writeFile(t, filepath.Join(install, "skills", "brainstorm", "SKILL.md"), "---\ndescription: Brainstorm ideas\n---\n")
	writeFile(t, filepath.Join(install, "skills", "tdd-helper", "skill.yaml"), "description: TDD\n")

	plugins := []PluginDir{
		{Plugin: "superpowers", Source: component.Official, Path: install},
		{Plugin: "gone", Source: component.ThirdParty, Path: filepath.Join(root, "missing")},
	}
	skills := Extract(Locate(root), plugins, nil)
	if len(skills) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(skills))
	}
	if skills[0].Name != "global" || !skills[0].Location.IsGlobal() {
		t.Errorf("skills[0] = %+v, want the global skill first", skills[0])
	}
	for _, s := range skills[1:] {
		if s.Location != component.InPlugin("superpowers") {
			t.Errorf("%s: Location = %v", s.Name, s.Location)
		}
		// Plugin skills inherit the plugin's provenance, hyphen or not.
		if s.Source != component.Official {
			t.Errorf("%s: Source = %v, want official", s.Name, s.Source)
		}
	}
}

func TestPluginSkillsWithoutGlobalDir(t *testing.T) {
	root := t.TempDir()
	install := filepath.Join(root, "p")
	writeFile(t, filepath.Join(install, "skills", "only", "SKILL.md"), "---\ndescription: o\n---\n")

	src := Locate(root)
	if src.Kind != locate.NotPresent {
		t.Fatalf("Locate kind = %v, want not-present", src.Kind)
	}
	skills := Extract(src, []PluginDir{{Plugin: "p", Source: component.ThirdParty, Path: install}}, nil)
	if len(skills) != 1 || skills[0].Source != component.ThirdParty {
		t.Fatalf("unexpected skills: %+v", skills)
	}
}
