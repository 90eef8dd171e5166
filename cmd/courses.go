package cmd

import (
	"fmt"

	"github.com/lehigh-university-libraries/registrar/internal/catalog"
	"github.com/lehigh-university-libraries/registrar/internal/export"
	"github.com/spf13/cobra"
)

func newCoursesCmd(opts *globalOptions) *cobra.Command {
	var domain string
	var search string

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List catalog courses, optionally filtered by domain and search text",
		Long: `Lists the catalog in its fixed order. Courses already in the draft are
marked with an asterisk.

Search text is matched case-insensitively against the course code and title.`,
		Example: `  # Every course
  registrar courses

  # AI courses only
  registrar courses --domain AI

  # Search codes and titles
  registrar courses --search cs10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			courses := s.engine.Catalog().Filter(domain, search)
			export.PrintCourses(cmd.OutOrStdout(), courses, s.engine.IsSelected)
			return nil
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", catalog.AllDomains, "Domain to show (see 'registrar domains')")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive code or title search")

	return cmd
}

func newDomainsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List the course domains available for filtering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			for _, d := range s.engine.Catalog().Domains() {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}
