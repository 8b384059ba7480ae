package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/claude-list/claude-list/internal/config"
	"github.com/claude-list/claude-list/internal/render"
	"github.com/claude-list/claude-list/internal/tui"
)

func (a *app) newBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the inventory interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !render.IsTerminal(cmd.OutOrStdout()) {
				return errors.New("browse needs an interactive terminal")
			}
			root, err := config.ResolveRoot(a.opts.ConfigDir)
			if err != nil {
				return err
			}
			r, err := a.scan(cmd.Context(), root)
			if err != nil {
				return err
			}
			return tui.New(tui.AppConfig{
				Report: r,
				Color:  a.colorEnabled(cmd.OutOrStdout()),
			}).Run(cmd.Context())
		},
	}
}
