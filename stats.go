package linalgbench

import (
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes the samples of one kernel. All values are seconds.
type Statistics struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"` // population standard deviation
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	P95    float64 `json:"p95"`
}

// Summarize computes the mean, population standard deviation and order
// statistics of samples. An empty slice yields the zero Statistics.
func Summarize(samples []time.Duration) Statistics {
	if len(samples) == 0 {
		return Statistics{}
	}

	xs := Seconds(samples)
	mean, std := stat.PopMeanStdDev(xs, nil)

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	return Statistics{
		Mean:   mean,
		StdDev: std,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}

// Seconds converts samples to floating-point seconds.
func Seconds(samples []time.Duration) []float64 {
	xs := make([]float64, len(samples))
	for i, d := range samples {
		xs[i] = d.Seconds()
	}
	return xs
}
