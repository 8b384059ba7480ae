package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claude-list/claude-list/internal/config"
	"github.com/claude-list/claude-list/internal/inventory"
)

const fixtureRoot = "../inventory/testdata/fixture"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("0.3.0")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCompactListing(t *testing.T) {
	out, err := run(t, "-c", fixtureRoot)
	require.NoError(t, err)

	assert.Contains(t, out, "CLAUDE-LIST v0.3.0")
	assert.Contains(t, out, "PLUGINS")
	assert.Contains(t, out, "superpowers")
	assert.Contains(t, out, "/commit")
	assert.NotContains(t, out, "\x1b[", "a buffer is not a terminal")
}

func TestDetailedListing(t *testing.T) {
	compact, err := run(t, "-c", fixtureRoot)
	require.NoError(t, err)
	long, err := run(t, "-c", fixtureRoot, "-l")
	require.NoError(t, err)
	viaOutput, err := run(t, "-c", fixtureRoot, "--output", "detailed")
	require.NoError(t, err)

	assert.Equal(t, long, viaOutput)
	assert.NotEqual(t, compact, long)
	abs, err := filepath.Abs(fixtureRoot)
	require.NoError(t, err)
	assert.Contains(t, long, abs)
}

func TestJSONOutput(t *testing.T) {
	out, err := run(t, "--config", fixtureRoot, "--json", "-l")
	require.NoError(t, err)

	var r inventory.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "0.3.0", r.Version)
	assert.Len(t, r.Plugins, 2)
	assert.Len(t, r.Skills, 3)
	assert.Equal(t, 2, r.Sessions.Count)
	assert.Len(t, r.MCPServers, 2)
	assert.Len(t, r.Hooks, 1)
	assert.Len(t, r.Agents, 1)
	assert.Len(t, r.Commands, 1)
}

func TestTypeAndSearchFilters(t *testing.T) {
	out, err := run(t, "-c", fixtureRoot, "--json", "--skills", "--agents", "-s", "PDF")
	require.NoError(t, err)

	var r inventory.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.Len(t, r.Skills, 1)
	assert.Equal(t, "pdf", r.Skills[0].Name)
	assert.Empty(t, r.Agents, "no agent matches the search")
	assert.Empty(t, r.Plugins)
	assert.Empty(t, r.Commands)
}

func TestConfigDirFromEnvironment(t *testing.T) {
	t.Setenv(config.EnvConfigDir, fixtureRoot)
	out, err := run(t, "--json", "--commands")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "commit"`)
}

func TestMissingConfigDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	_, err := run(t, "-c", missing)
	require.Error(t, err)

	var notFound *config.DirectoryNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "Directory not found: ")
}

func TestInvalidOutputMode(t *testing.T) {
	_, err := run(t, "-c", fixtureRoot, "-o", "fancy")
	assert.ErrorContains(t, err, "invalid output mode")
}

func TestColorFlagsAreExclusive(t *testing.T) {
	_, err := run(t, "-c", fixtureRoot, "--color", "--no-color")
	assert.Error(t, err)
}

func TestForcedColor(t *testing.T) {
	out, err := run(t, "-c", fixtureRoot, "--color")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
}

func TestShow(t *testing.T) {
	out, err := run(t, "-c", fixtureRoot, "show", "command", "/commit")
	require.NoError(t, err)
	assert.Contains(t, out, "## Context")
	assert.NotContains(t, out, "allowed-tools")

	out, err = run(t, "-c", fixtureRoot, "show", "skills", "pdf")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestShowErrors(t *testing.T) {
	_, err := run(t, "-c", fixtureRoot, "show", "widget", "x")
	assert.Error(t, err)

	_, err = run(t, "-c", fixtureRoot, "show", "agent", "nobody")
	assert.ErrorContains(t, err, `agent "nobody" not found`)

	_, err = run(t, "-c", fixtureRoot, "show", "agent")
	assert.Error(t, err)
}

func TestBrowseNeedsTerminal(t *testing.T) {
	_, err := run(t, "-c", fixtureRoot, "browse")
	assert.ErrorContains(t, err, "interactive terminal")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "claude-list 0.3.0\n", out)

	out, err = run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "claude-list 0.3.0\n", out)
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, err := run(t, "-c", fixtureRoot, "extra")
	assert.Error(t, err)
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWatchFrame(t *testing.T) {
	a := &app{version: "0.3.0"}
	r := &inventory.Report{Version: "0.3.0", ConfigDir: "/x"}

	var buf bytes.Buffer
	require.NoError(t, a.printFrame(&buf, true, config.OutputCompact, r))
	assert.True(t, strings.HasPrefix(buf.String(), clearScreen))
	assert.Contains(t, buf.String(), "CLAUDE-LIST v0.3.0")

	buf.Reset()
	require.NoError(t, a.printFrame(&buf, false, config.OutputCompact, r))
	assert.NotContains(t, buf.String(), clearScreen)

	errClosed := errors.New("closed")
	err := a.printFrame(failingWriter{err: errClosed}, true, config.OutputJSON, r)
	assert.ErrorIs(t, err, errClosed)
}
