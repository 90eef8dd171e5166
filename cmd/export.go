package cmd

import (
	"fmt"

	"github.com/lehigh-university-libraries/registrar/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the selected courses to a shareable file",
		Long: `Writes the full record of every selected course, in selection order.
Codes that are no longer in the catalog are left out.

Use --output - to write to stdout.`,
		Example: `  # Write course_selection.json
  registrar export

  # YAML to stdout
  registrar export --format yaml --output -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			courses := s.engine.ExportSelection()
			if output == "-" {
				return export.Write(cmd.OutOrStdout(), f, courses)
			}

			path, err := export.WriteFile(output, f, courses)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d course(s) to %s\n", len(courses), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", export.DefaultFilename, "Output file, or - for stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json or yaml)")

	return cmd
}
