package commands

import (
	"context"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-collection-idioms/idioms"
	"github.com/hasbyte1/go-collection-idioms/internal/config"
)

// app is the state shared by subcommands once flags and environment are
// resolved.
type app struct {
	cfg     config.Config
	catalog *idioms.Catalog
	logger  *log.Logger
}

// runner builds a Runner writing to out in the configured format.
func (a *app) runner(out io.Writer, format idioms.Format) *idioms.Runner {
	return idioms.NewRunner(a.catalog, out, idioms.RunnerOptions{
		Format: format,
		Logger: a.logger,
	})
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd returns the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var (
		format  string
		only    []string
		verbose bool
	)

	root := &cobra.Command{
		Use:          "idioms",
		Short:        "Run small demos of common list idioms",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("format") {
				cfg.Format = format
			}
			if flags.Changed("only") {
				cfg.Only = only
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.cfg = cfg
			a.catalog = idioms.DefaultCatalog()
			a.logger = nil
			if cfg.Verbose {
				a.logger = log.New(cmd.ErrOrStderr(), "[IDIOMS] ", log.LstdFlags)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	root.PersistentFlags().StringSliceVar(&only, "only", nil, "run only these demos (repeatable or comma separated)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log one line per demo to stderr")

	root.AddCommand(runCmd(a), listCmd(a), fingerprintCmd(a))
	return root
}
