package linalgbench

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSchurFactorize(t *testing.T) {
	rnd := newRand(11)
	for _, n := range []int{1, 2, 3, 5, 10, 33} {
		a := NewInputs(n, Float64, rnd).A

		var s Schur
		require.NoError(t, s.Factorize(a), "n=%d", n)
		tm, z := s.T(), s.Z()

		// A = Z·T·Zᵗ
		var rec mat.Dense
		rec.Product(z, tm, z.T())
		assert.True(t, mat.EqualApprox(&rec, a, 1e-10), "n=%d: reconstruction mismatch", n)

		// Z is orthogonal.
		var ztz mat.Dense
		ztz.Mul(z.T(), z)
		id := mat.NewDiagDense(n, nil)
		for i := 0; i < n; i++ {
			id.SetDiag(i, 1)
		}
		assert.True(t, mat.EqualApprox(&ztz, id, 1e-10), "n=%d: Z not orthogonal", n)

		// T is quasi-triangular with no two adjacent subdiagonal entries.
		for i := 0; i < n; i++ {
			for j := 0; j < i-1; j++ {
				assert.Zero(t, tm.At(i, j), "n=%d: T[%d,%d]", n, i, j)
			}
		}
		for i := 1; i < n-1; i++ {
			assert.False(t, tm.At(i, i-1) != 0 && tm.At(i+1, i) != 0, "n=%d: adjacent 2×2 blocks at %d", n, i)
		}

		// The eigenvalues sum to the trace.
		var sum complex128
		ev := s.Eigenvalues()
		require.Len(t, ev, n)
		for _, v := range ev {
			sum += v
		}
		assert.InDelta(t, mat.Trace(a), real(sum), 1e-9*math.Max(1, float64(n)))
		assert.InDelta(t, 0, imag(sum), 1e-9)
	}
}

func TestSchurKnownEigenvalues(t *testing.T) {
	// Rotation by 90° has eigenvalues ±i and is already in Schur form.
	a := mat.NewDense(2, 2, []float64{0, -1, 1, 0})

	var s Schur
	require.NoError(t, s.Factorize(a))
	ev := s.Eigenvalues()
	require.Len(t, ev, 2)
	assert.InDelta(t, 0, real(ev[0]), 1e-12)
	assert.InDelta(t, 1, math.Abs(imag(ev[0])), 1e-12)
	assert.InDelta(t, -imag(ev[0]), imag(ev[1]), 1e-12)

	// A diagonal matrix keeps its diagonal.
	d := mat.NewDense(3, 3, []float64{3, 0, 0, 0, 2, 0, 0, 0, 1})
	require.NoError(t, s.Factorize(d))
	var got []float64
	for _, v := range s.Eigenvalues() {
		got = append(got, real(v))
	}
	sort.Float64s(got)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, got, 1e-12)
}

func TestSchurErrors(t *testing.T) {
	var s Schur
	assert.ErrorIs(t, s.Factorize(mat.NewDense(2, 3, nil)), mat.ErrSquare)
	assert.Nil(t, s.T())
	assert.Nil(t, s.Z())
	assert.Empty(t, s.Eigenvalues())
}
