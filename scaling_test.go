package linalgbench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// synthetic builds results where kernel name i takes c·n^k seconds.
func synthetic(sizes []int, kernels map[string][2]float64, order []string) []SizeResult {
	results := make([]SizeResult, 0, len(sizes))
	for _, n := range sizes {
		r := SizeResult{Size: n, Precision: Float64, Runs: 1}
		for _, name := range order {
			ck := kernels[name]
			mean := ck[0] * math.Pow(float64(n), ck[1])
			r.Operations = append(r.Operations, OperationResult{Name: name, Stats: Statistics{Mean: mean}})
		}
		results = append(results, r)
	}
	return results
}

func TestFitScaling(t *testing.T) {
	order := []string{NameAddition, NameMultiplication}
	results := synthetic([]int{10, 50, 100, 500}, map[string][2]float64{
		NameAddition:       {1e-9, 2},
		NameMultiplication: {2e-10, 3},
	}, order)

	fits := FitScaling(results)
	require.Len(t, fits, 2)

	assert.Equal(t, NameAddition, fits[0].Name)
	assert.InDelta(t, 2, fits[0].Exponent, 1e-9)
	assert.InDelta(t, 1e-9, fits[0].Coefficient, 1e-15)
	assert.InDelta(t, 1, fits[0].RSquared, 1e-9)
	assert.Equal(t, 4, fits[0].Points)

	assert.Equal(t, NameMultiplication, fits[1].Name)
	assert.InDelta(t, 3, fits[1].Exponent, 1e-9)
	assert.InDelta(t, 2e-10*math.Pow(1000, 3), fits[1].Predict(1000), 1e-6)
}

func TestFitScalingSkips(t *testing.T) {
	// One size: nothing to fit.
	one := synthetic([]int{10}, map[string][2]float64{NameSVD: {1, 1}}, []string{NameSVD})
	assert.Empty(t, FitScaling(one))

	// Zero means are ignored.
	results := synthetic([]int{10, 20, 40}, map[string][2]float64{NameQR: {1e-8, 3}}, []string{NameQR})
	results[1].Operations[0].Stats.Mean = 0
	fits := FitScaling(results)
	require.Len(t, fits, 1)
	assert.Equal(t, 2, fits[0].Points)

	// Constant latency fits a zero exponent.
	flat := synthetic([]int{10, 20, 40}, map[string][2]float64{NameLU: {1e-6, 0}}, []string{NameLU})
	fits = FitScaling(flat)
	require.Len(t, fits, 1)
	assert.InDelta(t, 0, fits[0].Exponent, 1e-12)
	assert.False(t, math.IsNaN(fits[0].RSquared))
}
