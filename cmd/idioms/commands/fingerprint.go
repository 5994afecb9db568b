package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-collection-idioms/idioms"
)

func fingerprintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [demo...]",
		Short: "Print the fingerprint of the demo transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := append(append([]string{}, a.cfg.Only...), args...)
			report, err := a.runner(io.Discard, idioms.FormatText).Run(cmd.Context(), names...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", idioms.Fingerprint(report.Transcript))
			return nil
		},
	}
}
