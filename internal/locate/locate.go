// Package locate decides which on-disk layout a component type uses under a
// configuration root.
//
// Each component type lists its candidate layouts in priority order (newest
// first). First returns the first candidate present on disk. A missing file
// or directory is the normal steady state, never an error.
package locate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Kind says what a Source points at.
type Kind int

const (
	NotPresent       Kind = iota // no candidate layout exists
	LegacyFile                   // a single JSON/YAML file holding every item
	DirectoryOfItems             // a directory with one entry per item
	ItemFile                     // a single file in the newer layout (installed_plugins.json, history.jsonl)
)

func (k Kind) String() string {
	switch k {
	case LegacyFile:
		return "legacy-file"
	case DirectoryOfItems:
		return "directory"
	case ItemFile:
		return "file"
	default:
		return "not-present"
	}
}

// Source is the resolved location for one component type.
type Source struct {
	Kind Kind
	Path string
}

// Present reports whether a layout was found.
func (s Source) Present() bool { return s.Kind != NotPresent }

// Candidate is one possible layout for a component type.
type Candidate struct {
	Kind Kind
	Rel  string // path relative to the configuration root, slash-separated
}

// File is a candidate that must be a regular file.
func File(kind Kind, rel string) Candidate { return Candidate{Kind: kind, Rel: rel} }

// Dir is a candidate that must be a directory.
func Dir(rel string) Candidate { return Candidate{Kind: DirectoryOfItems, Rel: rel} }

// First returns the first candidate that exists under root with the right
// file type, or a NotPresent source.
func First(root string, candidates ...Candidate) Source {
	for _, c := range candidates {
		p := filepath.Join(root, filepath.FromSlash(c.Rel))
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if (c.Kind == DirectoryOfItems) != info.IsDir() {
			continue
		}
		return Source{Kind: c.Kind, Path: p}
	}
	return Source{Kind: NotPresent}
}

// Glob returns the entries of dir matching a doublestar pattern, as full
// paths in lexical order. A missing or unreadable dir yields nil.
func Glob(dir, pattern string) []string {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(dir, filepath.FromSlash(m)))
	}
	return paths
}

// MarkdownFiles returns the regular *.md files directly inside dir.
func MarkdownFiles(dir string) []string {
	var files []string
	for _, p := range Glob(dir, "*.md") {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, p)
	}
	return files
}

// Subdirs returns the directories directly inside dir, following symlinks.
func Subdirs(dir string) []string {
	var dirs []string
	for _, p := range Glob(dir, "*") {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, p)
	}
	return dirs
}

// Exists reports whether p exists and is a regular file.
func Exists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// BaseName returns the file name of p without its extension.
func BaseName(p string) string {
	base := filepath.Base(p)
	return base[:len(base)-len(filepath.Ext(base))]
}

// IsNotExist reports whether err means a path is absent, so callers can stay
// quiet about files deleted between locating and reading them.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
