package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-collection-idioms/idioms"
)

type listEntry struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List demo names and titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snippets, err := a.catalog.Select(a.cfg.Only...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for _, s := range snippets {
				if a.cfg.OutputFormat() == idioms.FormatJSON {
					err = enc.Encode(listEntry{Name: s.Name, Title: s.Title})
				} else {
					_, err = fmt.Fprintf(out, "%s\t%s\n", s.Name, s.Title)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
