package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/strcalc/internal/suite"
)

func WriteTable(r *suite.Result, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.Name)

	header := []string{"Case", "Input", "Result", "Status", "Reason"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, c := range r.Cases {
		row := []string{
			c.ID,
			strconv.Quote(c.Input),
			formatOutcome(c),
			formatStatus(c.Passed),
			c.Reason,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\nPassed %d/%d (%.2f%%), failed %d\n",
		r.Summary.Passed, r.Summary.Total, r.Summary.PassRate, r.Summary.Failed)

	tw.Flush()
}

func formatOutcome(c suite.CaseResult) string {
	if c.Got != nil {
		return strconv.Itoa(*c.Got)
	}
	return c.Kind + " error"
}

func formatStatus(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}
