package linalgbench

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders an interactive HTML line chart of mean latency per
// kernel and size. The y axis is logarithmic.
func WriteChart(w io.Writer, results []SizeResult) error {
	if len(results) == 0 {
		return errTooFewSizes
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "linalgbench",
			Subtitle: fmt.Sprintf("mean latency in seconds (%s, %d runs)", results[0].Precision, results[0].Runs),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "n"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "seconds", Type: "log"}),
	)

	labels := sizeLabels(results)
	line.SetXAxis(labels)
	for _, s := range seriesOf(results) {
		// Align on the x axis; sizes without a mean stay empty.
		bySize := make(map[int]float64, len(s.sizes))
		for i, n := range s.sizes {
			bySize[n] = s.means[i]
		}
		data := make([]opts.LineData, len(results))
		for i, r := range results {
			if m, ok := bySize[r.Size]; ok {
				data[i] = opts.LineData{Name: labels[i], Value: m}
			} else {
				data[i] = opts.LineData{Name: labels[i], Value: "-"}
			}
		}
		line.AddSeries(s.name, data)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
