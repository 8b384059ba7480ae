// Package plugins reports installed plugins.
//
// Two layouts exist, tried in this order:
//   - plugins/installed_plugins.json, keyed by "<name>@<marketplace>":
//     {"version": 2, "plugins": {"context7@claude-plugins-official": [{"version": "..", "installPath": ".."}]}}
//   - settings.json (legacy): {"installed_plugins": [{"name": "..", "version": ".."}]}
package plugins

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/claude-list/claude-list/internal/component"
	"github.com/claude-list/claude-list/internal/decode"
	"github.com/claude-list/claude-list/internal/locate"
)

// Marketplaces whose plugins count as official.
var officialMarketplaces = map[string]bool{
	"claude-plugins-official": true,
	"claude-code-workflows":   true,
}

// Legacy plugin names with this prefix are third-party.
const thirdPartyPrefix = "plugin_"

// Plugin is one installed plugin.
type Plugin struct {
	Name        string               `json:"name"`
	Version     *string              `json:"version"`
	Source      component.Provenance `json:"source"`
	Path        string               `json:"path"`
	Description *string              `json:"description,omitempty"`
	Marketplace string               `json:"marketplace,omitempty"`
	InstallPath string               `json:"install_path,omitempty"`
}

// Locate finds the plugin registry under root.
func Locate(root string) locate.Source {
	return locate.First(root,
		locate.File(locate.ItemFile, "plugins/installed_plugins.json"),
		locate.File(locate.LegacyFile, "settings.json"),
	)
}

// Extract reads the located registry. A registry that cannot be read or
// decoded yields no plugins.
func Extract(src locate.Source, log *zap.Logger) []Plugin {
	switch src.Kind {
	case locate.ItemFile:
		return parseInstalled(src.Path, log)
	case locate.LegacyFile:
		return parseSettings(src.Path, log)
	default:
		return nil
	}
}

// parseSettings reads the legacy installed_plugins array from settings.json.
// Entries without a string name are skipped.
func parseSettings(path string, log *zap.Logger) []Plugin {
	data, ok := component.ReadFile(log, path)
	if !ok {
		return nil
	}
	obj, err := decode.JSONObject(data)
	if err != nil {
		component.Skipped(log, path, err)
		return nil
	}

	entries, _ := obj.Array("installed_plugins")
	var plugins []Plugin
	for i, raw := range entries {
		entry, ok := decode.AsObject(raw)
		if !ok {
			component.Logger(log).Debug("plugin entry is not an object", zap.String("path", path), zap.Int("index", i))
			continue
		}
		name, ok := entry.String("name")
		if !ok || name == "" {
			component.Logger(log).Debug("plugin entry without name", zap.String("path", path), zap.Int("index", i))
			continue
		}
		p := Plugin{
			Name:   name,
			Source: legacyProvenance(name),
			Path:   path,
		}
		if v, ok := entry.String("version"); ok {
			p.Version = &v
		}
		if d, ok := entry.String("description"); ok {
			p.Description = &d
		}
		plugins = append(plugins, p)
	}
	return plugins
}

func legacyProvenance(name string) component.Provenance {
	if strings.HasPrefix(name, thirdPartyPrefix) {
		return component.ThirdParty
	}
	return component.Official
}

// parseInstalled reads plugins/installed_plugins.json. Each key maps to an
// array of installs; the first install supplies version and install path.
func parseInstalled(path string, log *zap.Logger) []Plugin {
	data, ok := component.ReadFile(log, path)
	if !ok {
		return nil
	}
	obj, err := decode.JSONObject(data)
	if err != nil {
		component.Skipped(log, path, err)
		return nil
	}
	registry, ok := obj.Object("plugins")
	if !ok {
		return nil
	}

	var plugins []Plugin
	for _, key := range registry.Keys() {
		name, marketplace, qualified := strings.Cut(key, "@")
		if name == "" {
			component.Logger(log).Debug("plugin key without name", zap.String("path", path), zap.String("key", key))
			continue
		}
		installs, ok := registry.Array(key)
		if !ok || len(installs) == 0 {
			continue
		}

		p := Plugin{
			Name:        name,
			Source:      marketplaceProvenance(marketplace, qualified),
			Path:        path,
			Marketplace: marketplace,
		}
		if first, ok := decode.AsObject(installs[0]); ok {
			if v, ok := first.String("version"); ok {
				p.Version = &v
			}
			if dir, ok := first.String("installPath"); ok && dir != "" {
				if !filepath.IsAbs(dir) {
					dir = filepath.Join(filepath.Dir(path), dir)
				}
				p.InstallPath = dir
			}
		}
		plugins = append(plugins, p)
	}
	return plugins
}

// marketplaceProvenance treats a key without a marketplace as official.
func marketplaceProvenance(marketplace string, qualified bool) component.Provenance {
	if !qualified || officialMarketplaces[marketplace] {
		return component.Official
	}
	return component.ThirdParty
}

// Describe returns the plugin's description, or a default naming its
// provenance.
func (p Plugin) Describe() string {
	if p.Description != nil {
		return *p.Description
	}
	if p.Source == component.ThirdParty {
		return "Third-party plugin"
	}
	return "Official plugin"
}
