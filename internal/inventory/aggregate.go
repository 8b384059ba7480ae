package inventory

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/claude-list/claude-list/internal/agents"
	"github.com/claude-list/claude-list/internal/commands"
	"github.com/claude-list/claude-list/internal/component"
	"github.com/claude-list/claude-list/internal/hooks"
	"github.com/claude-list/claude-list/internal/mcp"
	"github.com/claude-list/claude-list/internal/plugins"
	"github.com/claude-list/claude-list/internal/session"
	"github.com/claude-list/claude-list/internal/skills"
)

// Options configures Aggregate.
type Options struct {
	// Version is recorded in the report.
	Version string
	// Log receives debug lines for every file that was skipped. Nil
	// discards them.
	Log *zap.Logger
}

// Aggregate scans root and returns the report. The root is expected to
// exist; a missing or broken source only empties its own section.
//
// It fails only when root cannot be made absolute or ctx is done.
func Aggregate(ctx context.Context, root string, opts Options) (*Report, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving config root: %w", err)
	}
	log := component.Logger(opts.Log).With(zap.String("root", abs))

	r := &Report{Version: opts.Version, ConfigDir: abs}

	// Each goroutine owns the fields it writes. Skills need the plugins'
	// install paths, so those two run in sequence.
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Plugins = plugins.Extract(plugins.Locate(abs), log)
		r.Skills = skills.Extract(skills.Locate(abs), PluginDirs(r.Plugins), log)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Sessions = session.Extract(session.Locate(abs), log)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.MCPServers = mcp.Extract(mcp.Locate(abs), log)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Hooks = hooks.Extract(hooks.Locate(abs), log)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Agents = agents.Extract(agents.Locate(abs), log)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Commands = commands.Extract(commands.Locate(abs), log)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.normalize()
	log.Debug("scan complete",
		zap.Int("plugins", len(r.Plugins)),
		zap.Int("skills", len(r.Skills)),
		zap.Int("sessions", r.Sessions.Count),
		zap.Int("mcp_servers", len(r.MCPServers)),
		zap.Int("hooks", len(r.Hooks)),
		zap.Int("agents", len(r.Agents)),
		zap.Int("commands", len(r.Commands)),
	)
	return r, nil
}

// PluginDirs returns the plugins whose install path is known, for skill
// discovery.
func PluginDirs(ps []plugins.Plugin) []skills.PluginDir {
	var dirs []skills.PluginDir
	for _, p := range ps {
		if p.InstallPath == "" {
			continue
		}
		dirs = append(dirs, skills.PluginDir{Plugin: p.Name, Source: p.Source, Path: p.InstallPath})
	}
	return dirs
}
