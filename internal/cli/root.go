// Package cli wires the claude-list commands together.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/claude-list/claude-list/internal/config"
	"github.com/claude-list/claude-list/internal/inventory"
	"github.com/claude-list/claude-list/internal/logging"
	"github.com/claude-list/claude-list/internal/render"
)

// app carries the state shared by every command of one invocation.
type app struct {
	version string
	opts    config.Options
	log     *zap.Logger
}

// NewRootCommand builds the claude-list command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version, log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "claude-list",
		Short: "List installed plugins, skills, sessions, MCP servers, hooks, agents and commands",
		Long: `claude-list inventories a Claude configuration directory (~/.claude by
default, or $CLAUDE_CONFIG_DIR) and reports what is installed.

Both the current and the legacy on-disk layouts are understood. Files that
cannot be parsed are skipped; run with --verbose to see which.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(a.opts.Verbose)
			if err != nil {
				return err
			}
			a.log = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		RunE: a.runList,
	}
	rootCmd.SetVersionTemplate("claude-list {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.opts.ConfigDir, "config", "c", "", "Custom .claude directory path")
	flags.StringVarP(&a.opts.Output, "output", "o", string(config.OutputCompact), "Output mode: compact|detailed")
	flags.BoolVarP(&a.opts.Long, "long", "l", false, "Detailed output (same as --output detailed)")
	flags.BoolVar(&a.opts.JSON, "json", false, "Output in JSON format")

	flags.BoolVar(&a.opts.Plugins, "plugins", false, "Show only plugins")
	flags.BoolVar(&a.opts.Skills, "skills", false, "Show only skills")
	flags.BoolVar(&a.opts.Sessions, "sessions", false, "Show only sessions")
	flags.BoolVar(&a.opts.MCP, "mcp", false, "Show only MCP servers")
	flags.BoolVar(&a.opts.Hooks, "hooks", false, "Show only hooks")
	flags.BoolVar(&a.opts.Agents, "agents", false, "Show only agents")
	flags.BoolVar(&a.opts.Commands, "commands", false, "Show only commands")
	flags.StringVarP(&a.opts.Search, "search", "s", "", "Only show entries whose name contains every keyword")

	flags.BoolVar(&a.opts.Color, "color", false, "Force colored output")
	flags.BoolVar(&a.opts.NoColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "Log skipped files to stderr")
	rootCmd.MarkFlagsMutuallyExclusive("color", "no-color")

	rootCmd.AddCommand(
		a.newBrowseCommand(),
		a.newWatchCommand(),
		a.newShowCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "claude-list %s\n", version)
			},
		},
	)
	return rootCmd
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	mode, err := a.opts.Mode()
	if err != nil {
		return err
	}
	root, err := config.ResolveRoot(a.opts.ConfigDir)
	if err != nil {
		return err
	}
	r, err := a.scan(cmd.Context(), root)
	if err != nil {
		return err
	}
	return a.print(cmd.OutOrStdout(), mode, r)
}

// scan aggregates root and applies the type and search filters.
func (a *app) scan(ctx context.Context, root string) (*inventory.Report, error) {
	r, err := inventory.Aggregate(ctx, root, inventory.Options{Version: a.version, Log: a.log})
	if err != nil {
		return nil, err
	}
	return inventory.Filter(r, a.filterFlags()), nil
}

func (a *app) filterFlags() inventory.FilterFlags {
	return inventory.FilterFlags{
		Plugins:  a.opts.Plugins,
		Skills:   a.opts.Skills,
		Sessions: a.opts.Sessions,
		MCP:      a.opts.MCP,
		Hooks:    a.opts.Hooks,
		Agents:   a.opts.Agents,
		Commands: a.opts.Commands,
		Search:   inventory.NewSearchFilter(a.opts.Search),
	}
}

func (a *app) colorEnabled(w io.Writer) bool {
	return render.ColorSettings{NoColor: a.opts.NoColor, Force: a.opts.Color}.Enabled(w)
}

func (a *app) print(w io.Writer, mode config.OutputMode, r *inventory.Report) error {
	switch mode {
	case config.OutputJSON:
		return render.JSON(w, r)
	case config.OutputDetailed:
		return render.Detailed(w, r, render.NewTheme(a.colorEnabled(w)))
	default:
		return render.Compact(w, r, render.NewTheme(a.colorEnabled(w)))
	}
}
