package linalgbench

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// errTooFewSizes is returned by the renderers when a log-log axis cannot be
// built.
var errTooFewSizes = errors.New("linalgbench: at least two sizes are needed")

// WritePlot renders mean latency against matrix size, one line per kernel,
// on log-log axes. format is one of the gonum/plot formats ("png", "svg",
// "pdf", ...).
func WritePlot(w io.Writer, results []SizeResult, format string) error {
	if len(results) < 2 {
		return errTooFewSizes
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Mean latency (%s, %d runs)", results[0].Precision, results[0].Runs)
	p.X.Label.Text = "n"
	p.Y.Label.Text = "seconds"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	var lines []any
	for _, s := range seriesOf(results) {
		xys := make(plotter.XYs, len(s.sizes))
		for i := range s.sizes {
			xys[i].X = float64(s.sizes[i])
			xys[i].Y = s.means[i]
		}
		lines = append(lines, s.name, xys)
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return fmt.Errorf("plot lines: %w", err)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	wt, err := p.WriterTo(8*vg.Inch, 5*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("plot %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	return nil
}
