// Package config resolves the configuration root and the output options
// for a run.
//
// The root is taken from the first of (highest priority first):
//  1. --config/-c flag
//  2. CLAUDE_CONFIG_DIR environment variable
//  3. ~/.claude
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigDir overrides the default configuration root.
const EnvConfigDir = "CLAUDE_CONFIG_DIR"

// DirectoryNotFoundError reports a configuration root that does not exist
// or is not a directory.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("Directory not found: %s", e.Path)
}

// ResolveRoot picks the configuration root, expands a leading ~, makes it
// absolute and checks that it is a directory.
func ResolveRoot(flag string) (string, error) {
	path, err := rootPath(flag)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", &DirectoryNotFoundError{Path: abs}
	}
	return abs, nil
}

// rootPath applies the precedence chain without touching the filesystem.
func rootPath(flag string) (string, error) {
	if flag != "" {
		return ExpandHome(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return ExpandHome(env)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".claude"), nil
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths, including "~user", are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
