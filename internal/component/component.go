// Package component holds the value types shared by every extractor: the
// provenance and location variants, and the read helper that turns I/O
// failures into "no data" instead of errors.
package component

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/claude-list/claude-list/internal/locate"
)

// Provenance classifies a plugin or skill as first-party or not.
type Provenance int

const (
	Official Provenance = iota
	ThirdParty
)

func (p Provenance) String() string {
	if p == ThirdParty {
		return "third-party"
	}
	return "official"
}

func (p Provenance) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Provenance) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "official":
		*p = Official
	case "third-party":
		*p = ThirdParty
	default:
		return fmt.Errorf("unknown provenance %q", s)
	}
	return nil
}

// Location says where a skill was found. The zero value is Global.
type Location struct {
	Plugin string // owning plugin; empty for global skills
}

// Global is the location of skills under the root's own skills directory.
var Global = Location{}

// InPlugin is the location of skills shipped inside an installed plugin.
func InPlugin(name string) Location { return Location{Plugin: name} }

// IsGlobal reports whether the skill lives in the root's skills directory.
func (l Location) IsGlobal() bool { return l.Plugin == "" }

func (l Location) String() string {
	if l.IsGlobal() {
		return "global"
	}
	return "plugin:" + l.Plugin
}

type locationJSON struct {
	Type       string `json:"type"`
	PluginName string `json:"plugin_name,omitempty"`
}

func (l Location) MarshalJSON() ([]byte, error) {
	if l.IsGlobal() {
		return json.Marshal(locationJSON{Type: "Global"})
	}
	return json.Marshal(locationJSON{Type: "Plugin", PluginName: l.Plugin})
}

func (l *Location) UnmarshalJSON(data []byte) error {
	var raw locationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "Global":
		*l = Global
	case "Plugin":
		if raw.PluginName == "" {
			return fmt.Errorf("plugin location without plugin_name")
		}
		*l = InPlugin(raw.PluginName)
	default:
		return fmt.Errorf("unknown location type %q", raw.Type)
	}
	return nil
}

// Logger returns l, or a no-op logger when l is nil.
func Logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// ReadFile reads path and reports whether it succeeded. Failures are logged
// at debug level and otherwise absorbed.
func ReadFile(log *zap.Logger, path string) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !locate.IsNotExist(err) {
			Logger(log).Debug("unreadable file skipped", zap.String("path", path), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// Skipped logs a source that produced no data because it failed to decode.
func Skipped(log *zap.Logger, path string, err error) {
	Logger(log).Debug("malformed file skipped", zap.String("path", path), zap.Error(err))
}

// StringPtr returns a pointer to s. Optional record fields use *string so
// that "absent" and "empty" stay distinct.
func StringPtr(s string) *string { return &s }

// Lookup returns a pointer to m[key] when the key is present.
func Lookup(m map[string]string, key string) *string {
	if v, ok := m[key]; ok {
		return &v
	}
	return nil
}
