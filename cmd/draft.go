package cmd

import (
	"errors"
	"fmt"

	"github.com/lehigh-university-libraries/registrar/internal/export"
	"github.com/lehigh-university-libraries/registrar/internal/selection"
	"github.com/spf13/cobra"
)

func newToggleCmd(opts *globalOptions) *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "toggle CODE...",
		Short: "Add or remove courses from the draft",
		Long: `Each code is added to the draft if absent and removed if present.
The credit range is not enforced here; the summary shows the current total
and what is needed to reach the allowed range.

The draft is saved when the command finishes unless --no-save is given.`,
		Example: `  # Add two courses
  registrar toggle CS101 CS102

  # Preview the effect of dropping a course without saving
  registrar toggle CS102 --no-save`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			for _, code := range args {
				if _, ok := s.engine.Catalog().Lookup(code); !ok && !s.engine.IsSelected(code) {
					return fmt.Errorf("unknown course code: %s", code)
				}
				s.engine.Toggle(code)
			}

			out := cmd.OutOrStdout()
			export.PrintSummary(out, s.engine.Summary(), s.engine.ExportSelection())

			if noSave {
				return nil
			}
			if _, err := s.engine.SaveDraft(); err != nil {
				return fmt.Errorf("draft not saved: %w", err)
			}
			fmt.Fprintln(out, "Draft saved.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not persist the updated draft")

	return cmd
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the draft selection and credit total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			export.PrintSummary(cmd.OutOrStdout(), s.engine.Summary(), s.engine.ExportSelection())
			return nil
		},
	}
}

func newClearCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the selection and remove the saved draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.engine.ClearDraft(); err != nil {
				if errors.Is(err, selection.ErrStorage) {
					return fmt.Errorf("selection cleared but saved draft could not be removed: %w", err)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Draft cleared.")
			return nil
		},
	}
}
