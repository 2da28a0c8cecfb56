package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/schoolnet/internal/logger"
	"github.com/katalvlaran/schoolnet/internal/tui"
)

func menuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu FILE",
		Short: "Edit facility placement interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSession(cmd, args[0])
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Session: s,
				Context: cmd.Context(),
				Logger:  logger.L(),
			})
		},
	}
}
