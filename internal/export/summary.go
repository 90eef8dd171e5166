package export

import (
	"fmt"
	"io"

	"github.com/lehigh-university-libraries/registrar/internal/catalog"
	"github.com/lehigh-university-libraries/registrar/internal/selection"
)

// PrintSummary writes the selection list, running total and status hint.
func PrintSummary(w io.Writer, summary selection.Summary, courses []catalog.Course) {
	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w, "Selected Courses")
	fmt.Fprintln(w, "========================================")

	if len(courses) == 0 {
		fmt.Fprintln(w, "No courses selected")
	}
	for _, c := range courses {
		fmt.Fprintf(w, "  %-7s %-40s %d cr\n", c.Code, truncate(c.Title, 40), c.Credits)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total credits: %d (allowed %d-%d)\n", summary.Total, summary.Range.Min, summary.Range.Max)
	fmt.Fprintln(w, summary.Hint)
}

// PrintCourses writes a catalog listing, marking selected courses.
func PrintCourses(w io.Writer, courses []catalog.Course, isSelected func(code string) bool) {
	if len(courses) == 0 {
		fmt.Fprintln(w, "No courses match your filter/search.")
		return
	}
	for _, c := range courses {
		mark := " "
		if isSelected != nil && isSelected(c.Code) {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-7s %-40s %-18s %d cr\n", mark, c.Code, truncate(c.Title, 40), c.Domain, c.Credits)
	}
}

// truncate shortens s to maxLen runes.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
