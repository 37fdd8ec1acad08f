package linalgbench

import (
	"fmt"
	"io"
)

// Header returns the first line of a size block. Backends other than
// gonum are named in brackets in front of it.
func Header(b Backend, n int, p Precision) string {
	h := fmt.Sprintf("Benchmarking for %dx%d matrices (%s)", n, n, p)
	if b != Gonum {
		h = fmt.Sprintf("[%s] %s", b, h)
	}
	return h
}

// FormatLine renders the summary line of one kernel, e.g.
//
//	Addition: 1.23e-06 s ± 4.56e-08 s
func FormatLine(r OperationResult) string {
	return fmt.Sprintf("%s: %.2e s ± %.2e s", r.Name, r.Stats.Mean, r.Stats.StdDev)
}

// writeHeader starts a size block: a blank separator line, the header and
// the run count.
func writeHeader(w io.Writer, b Backend, n int, p Precision, runs int) error {
	_, err := fmt.Fprintf(w, "\n%s\nRuns: %d\n", Header(b, n, p), runs)
	return err
}

func writeLine(w io.Writer, r OperationResult) error {
	_, err := fmt.Fprintln(w, FormatLine(r))
	return err
}
