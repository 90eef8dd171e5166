package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/registrar/internal/selection"
	"github.com/spf13/cobra"
)

func newSubmitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Submit the draft if its credit total is within range",
		Long: `Checks the credit total of the draft against the allowed range. When it is
in range a submission record is written; the draft stays editable and may be
submitted again. Otherwise the command explains what to change and exits
with an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			result, err := s.engine.Submit()
			if !result.Accepted {
				if err != nil {
					return err
				}
				return fmt.Errorf("submission rejected: %s", strings.Join(result.Reasons, "; "))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Submitted successfully (%d credits) at %s.\n",
				result.Total, result.SubmittedAt.Format(time.RFC3339))

			if errors.Is(err, selection.ErrStorage) {
				return fmt.Errorf("submission accepted but not recorded: %w", err)
			}
			return err
		},
	}
}
