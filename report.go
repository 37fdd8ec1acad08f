package linalgbench

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Report is the machine-readable form of a sweep.
type Report struct {
	Results []SizeResult `json:"results"`
	Scaling []ScalingFit `json:"scaling,omitempty"`
}

// NewReport bundles results with their scaling fits.
func NewReport(results []SizeResult) Report {
	return Report{Results: results, Scaling: FitScaling(results)}
}

// WriteJSON writes NewReport(results) as indented JSON.
func WriteJSON(w io.Writer, results []SizeResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReport(results)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// ReadJSON decodes a report written by WriteJSON.
func ReadJSON(r io.Reader) (Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}
	return rep, nil
}

// latencySeries is the mean latency of one kernel across sizes, shared by
// the plot and chart renderers.
type latencySeries struct {
	name  string
	sizes []int
	means []float64
}

// seriesOf groups results by kernel, in order of first appearance,
// keeping only positive means.
func seriesOf(results []SizeResult) []latencySeries {
	var out []latencySeries
	index := make(map[string]int)
	for _, r := range results {
		for _, op := range r.Operations {
			if op.Stats.Mean <= 0 {
				continue
			}
			i, ok := index[op.Name]
			if !ok {
				i = len(out)
				index[op.Name] = i
				out = append(out, latencySeries{name: op.Name})
			}
			out[i].sizes = append(out[i].sizes, r.Size)
			out[i].means = append(out[i].means, op.Stats.Mean)
		}
	}
	return out
}

// sizeLabels returns the sizes of results as strings, in order.
func sizeLabels(results []SizeResult) []string {
	labels := make([]string, len(results))
	for i, r := range results {
		labels[i] = strconv.Itoa(r.Size)
	}
	return labels
}
