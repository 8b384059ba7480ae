package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claude-list/claude-list/internal/config"
	"github.com/claude-list/claude-list/internal/inventory"
	"github.com/claude-list/claude-list/internal/render"
)

func (a *app) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <type> <name>",
		Short: "Render the document behind one entry",
		Long: `Render the Markdown of a skill, agent, command or hook, or the manifest of
a plugin or MCP server.

Types: plugin, skill, mcp, hook, agent, command (plurals are accepted).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := inventory.ParseKind(args[0])
			if err != nil {
				return err
			}
			root, err := config.ResolveRoot(a.opts.ConfigDir)
			if err != nil {
				return err
			}
			r, err := inventory.Aggregate(cmd.Context(), root, inventory.Options{Version: a.version, Log: a.log})
			if err != nil {
				return err
			}
			name := strings.TrimPrefix(args[1], "/")
			it, ok := r.Find(kind, name)
			if !ok {
				return fmt.Errorf("%s %q not found", kind, name)
			}
			doc, err := inventory.Document(it)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color := a.colorEnabled(out)
			if !color {
				_, err = fmt.Fprint(out, doc)
				return err
			}
			md := render.NewMarkdownRenderer(render.TerminalWidth(out, 80), color)
			_, err = fmt.Fprintln(out, md.Render(doc))
			return err
		},
	}
}
