package cli

import (
	"github.com/spf13/cobra"
)

func newCompetitorsCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "competitors",
		Short: "List your registered companies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			ctx, cancel := withTimeout(cmd, a)
			defer cancel()

			list, err := a.api().ListCompetitors(ctx)
			if err != nil {
				return err
			}
			return writeCompetitors(cmd.OutOrStdout(), output, list)
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}
