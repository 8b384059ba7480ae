package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveRootPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	defaultRoot := filepath.Join(home, ".claude")
	os.MkdirAll(defaultRoot, 0755)

	envRoot := t.TempDir()
	flagRoot := t.TempDir()

	// Default.
	t.Setenv(EnvConfigDir, "")
	got, err := ResolveRoot("")
	if err != nil {
		t.Fatalf("ResolveRoot: %v", err)
	}
	if got != defaultRoot {
		t.Errorf("ResolveRoot() = %q, want %q", got, defaultRoot)
	}

	// Environment beats default.
	t.Setenv(EnvConfigDir, envRoot)
	got, _ = ResolveRoot("")
	if got != envRoot {
		t.Errorf("ResolveRoot() with env = %q, want %q", got, envRoot)
	}

	// Flag beats environment.
	got, _ = ResolveRoot(flagRoot)
	if got != flagRoot {
		t.Errorf("ResolveRoot(flag) = %q, want %q", got, flagRoot)
	}
}

func TestResolveRootExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	os.MkdirAll(filepath.Join(home, "alt-claude"), 0755)

	got, err := ResolveRoot("~/alt-claude")
	if err != nil {
		t.Fatalf("ResolveRoot: %v", err)
	}
	if want := filepath.Join(home, "alt-claude"); got != want {
		t.Errorf("ResolveRoot(~/alt-claude) = %q, want %q", got, want)
	}
}

func TestResolveRootMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	_, err := ResolveRoot(missing)

	var notFound *DirectoryNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *DirectoryNotFoundError", err)
	}
	if notFound.Path != missing {
		t.Errorf("Path = %q, want %q", notFound.Path, missing)
	}
	if err.Error() != "Directory not found: "+missing {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestResolveRootNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "settings.json")
	os.WriteFile(file, []byte("{}"), 0644)

	var notFound *DirectoryNotFoundError
	if _, err := ResolveRoot(file); !errors.As(err, &notFound) {
		t.Errorf("error = %v, want *DirectoryNotFoundError", err)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct{ in, want string }{
		{"~", home},
		{"~/x/y", filepath.Join(home, "x", "y")},
		{"~other/x", "~other/x"},
		{"/abs/path", "/abs/path"},
		{"rel", "rel"},
	}
	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		opts Options
		want OutputMode
	}{
		{Options{}, OutputCompact},
		{Options{Output: "detailed"}, OutputDetailed},
		{Options{Long: true}, OutputDetailed},
		{Options{Long: true, JSON: true, Output: "compact"}, OutputJSON},
	}
	for _, tt := range tests {
		got, err := tt.opts.Mode()
		if err != nil {
			t.Fatalf("Mode(%+v): %v", tt.opts, err)
		}
		if got != tt.want {
			t.Errorf("Mode(%+v) = %q, want %q", tt.opts, got, tt.want)
		}
	}

	if _, err := (Options{Output: "json"}).Mode(); err == nil {
		t.Error("expected --output json to be rejected")
	}
}
