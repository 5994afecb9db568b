package commands

import (
	"github.com/spf13/cobra"
)

func runCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run demos and print their output",
		Long: "Run every demo in order, or only the named ones. Names may be given\n" +
			"as arguments or through --only; both lists are merged.",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := append(append([]string{}, a.cfg.Only...), args...)
			_, err := a.runner(cmd.OutOrStdout(), a.cfg.OutputFormat()).Run(cmd.Context(), names...)
			return err
		},
	}
}
