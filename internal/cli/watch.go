package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/claude-list/claude-list/internal/config"
	"github.com/claude-list/claude-list/internal/inventory"
	"github.com/claude-list/claude-list/internal/render"
	"github.com/claude-list/claude-list/internal/watch"
)

const clearScreen = "\x1b[H\x1b[2J"

func (a *app) newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the inventory and reprint it whenever the directory changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := a.opts.Mode()
			if err != nil {
				return err
			}
			root, err := config.ResolveRoot(a.opts.ConfigDir)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			clearFirst := render.IsTerminal(out)
			refresh := func(ctx context.Context) error {
				r, err := a.scan(ctx, root)
				if err != nil {
					return err
				}
				return a.printFrame(out, clearFirst, mode, r)
			}
			if err := refresh(ctx); err != nil {
				return err
			}

			w, err := watch.New(root, watch.Options{Log: a.log})
			if err != nil {
				return err
			}
			defer w.Close()
			fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", root)
			return w.Run(ctx, refresh)
		},
	}
}

// printFrame prints one watch frame, first clearing the screen when clearFirst
// is set.
func (a *app) printFrame(w io.Writer, clearFirst bool, mode config.OutputMode, r *inventory.Report) error {
	if clearFirst {
		if _, err := io.WriteString(w, clearScreen); err != nil {
			return err
		}
	}
	return a.print(w, mode, r)
}
