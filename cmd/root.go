package cmd

import (
	"github.com/lehigh-university-libraries/registrar/internal/config"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	catalogPath string
	dataDir     string
	verbose     bool
}

func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "registrar",
		Short: "Pick courses for the term and submit a selection within the credit range",
		Long: `Registrar keeps a draft course selection on this device, shows the running
credit total against the allowed range, and records a submission once the
total is within range.

The draft and submission records are stored locally; nothing is sent over the network.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			config.LoadDotEnv()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "Catalog file (.json, .jsonl, .yaml, .parquet); defaults to the built-in catalog")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Directory for the local draft store (default $REGISTRAR_DATA_DIR or .registrar)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging")

	cmd.AddCommand(newCoursesCmd(opts))
	cmd.AddCommand(newDomainsCmd(opts))
	cmd.AddCommand(newToggleCmd(opts))
	cmd.AddCommand(newStatusCmd(opts))
	cmd.AddCommand(newClearCmd(opts))
	cmd.AddCommand(newExportCmd(opts))
	cmd.AddCommand(newSubmitCmd(opts))

	return cmd
}
