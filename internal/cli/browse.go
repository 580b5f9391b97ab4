package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoloop/internal/tui"
	"github.com/idilsaglam/todoloop/internal/ui"
)

func newBrowseCmd(f *rootFlags, stdio IO) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and edit the list full screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd, *f, stdio)
			if err != nil {
				return err
			}
			changed, err := tui.Run(env.store, stdio.In, stdio.Out)
			if err != nil {
				env.logger.Error("browse failed", "err", err)
				return &ExitError{Code: ExitFailure, Err: err}
			}
			if changed {
				ui.OK(stdio.Out, "saved")
			}
			return nil
		},
	}
}
