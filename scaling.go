package linalgbench

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ScalingFit models the mean latency of one kernel as t(n) ≈ c·nᵏ.
type ScalingFit struct {
	Name        string  `json:"name"`
	Exponent    float64 `json:"exponent"`    // k
	Coefficient float64 `json:"coefficient"` // c, seconds
	RSquared    float64 `json:"r_squared"`   // goodness of fit in log-log space
	Points      int     `json:"points"`      // sizes used by the fit
}

// Predict returns the modelled mean latency in seconds at size n.
func (f ScalingFit) Predict(n int) float64 {
	return f.Coefficient * math.Pow(float64(n), f.Exponent)
}

// FitScaling fits log(mean) = log(c) + k·log(n) by least squares for every
// kernel, in order of first appearance. Sizes with a non-positive mean are
// ignored; kernels with fewer than two distinct usable sizes are skipped.
func FitScaling(results []SizeResult) []ScalingFit {
	type series struct{ x, y []float64 }

	var names []string
	byName := make(map[string]*series)
	for _, r := range results {
		for _, op := range r.Operations {
			if op.Stats.Mean <= 0 || r.Size <= 0 {
				continue
			}
			s, ok := byName[op.Name]
			if !ok {
				s = &series{}
				byName[op.Name] = s
				names = append(names, op.Name)
			}
			s.x = append(s.x, math.Log(float64(r.Size)))
			s.y = append(s.y, math.Log(op.Stats.Mean))
		}
	}

	fits := make([]ScalingFit, 0, len(names))
	for _, name := range names {
		s := byName[name]
		if distinct(s.x) < 2 {
			continue
		}
		alpha, beta := stat.LinearRegression(s.x, s.y, nil, false)
		r2 := stat.RSquared(s.x, s.y, nil, alpha, beta)
		if math.IsNaN(r2) {
			// Constant latency across sizes.
			r2 = 0
		}
		fits = append(fits, ScalingFit{
			Name:        name,
			Exponent:    beta,
			Coefficient: math.Exp(alpha),
			RSquared:    r2,
			Points:      len(s.x),
		})
	}
	return fits
}

func distinct(xs []float64) int {
	seen := make(map[float64]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}
	return len(seen)
}
