package cli

import (
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the comparison dashboard computed by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			ctx, cancel := withTimeout(cmd, a)
			defer cancel()

			vm, err := a.api().Dashboard(ctx)
			if err != nil {
				return err
			}
			return writeViewModel(cmd.OutOrStdout(), output, *vm)
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}
