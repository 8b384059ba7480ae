package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	content := `---
allowed-tools: Bash(git add:*), Bash(git status:*), AskUserQuestion
argument-hint: [message]
description:
---

## Context
`
	c := parseCommand("/cfg/commands/commit.md", content)
	assert.Equal(t, "commit", c.Name)
	require.NotNil(t, c.AllowedTools)
	assert.Equal(t, "Bash(git add:*), Bash(git status:*), AskUserQuestion", *c.AllowedTools)
	assert.Equal(t, "[message]", *c.ArgumentHint)
	require.NotNil(t, c.Description, "an empty description is still present")
	assert.Equal(t, "", *c.Description)
}

func TestParseCommandNameOverride(t *testing.T) {
	c := parseCommand("/cfg/commands/x.md", "---\nname: 'deploy'\ndescription: Ship it\n---\n")
	assert.Equal(t, "deploy", c.Name)
	assert.Equal(t, "Ship it", c.Describe())
	assert.Nil(t, c.AllowedTools)
	assert.Nil(t, c.ArgumentHint)
}

func TestExtract(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "commands")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "review.md"), []byte("Review the diff.\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "commit.md"), []byte("---\ndescription: Commit\n---\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "deep.md"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte(""), 0644))

	cmds := Extract(Locate(root), nil)
	require.Len(t, cmds, 2)
	assert.Equal(t, "commit", cmds[0].Name)
	assert.Equal(t, "review", cmds[1].Name)
	assert.Nil(t, cmds[1].Description)
}
