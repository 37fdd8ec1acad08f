package linalgbench

import (
	"math/rand/v2"

	lvmatrix "github.com/katalvlaran/lvlath/matrix"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/mat"
)

// workingSetMatrices is the number of n×n float64 matrices a size keeps
// alive at its peak: two inputs, the Cholesky input, a kernel result and
// the factorization scratch of the heaviest kernels.
const workingSetMatrices = 6

// Inputs holds the matrices generated for one size. They are read-only
// after NewInputs returns.
type Inputs struct {
	N         int
	Precision Precision
	A, B      *mat.Dense

	// A32 and B32 mirror A and B for Float32 sweeps, used by the kernels
	// that have a single-precision BLAS path.
	A32, B32 blas32.General

	// LA and LB mirror A and B for the lvlath backend; see AttachLvlath.
	LA, LB *lvmatrix.Dense
}

// NewInputs draws two independent n×n matrices with entries uniform in
// [0, 1), rounded to precision p.
func NewInputs(n int, p Precision, rnd *rand.Rand) *Inputs {
	in := &Inputs{N: n, Precision: p}
	in.A, in.A32 = randomDense(n, p, rnd)
	in.B, in.B32 = randomDense(n, p, rnd)
	return in
}

func randomDense(n int, p Precision, rnd *rand.Rand) (*mat.Dense, blas32.General) {
	data := make([]float64, n*n)
	if p != Float32 {
		for i := range data {
			data[i] = rnd.Float64()
		}
		return mat.NewDense(n, n, data), blas32.General{}
	}

	data32 := make([]float32, n*n)
	for i := range data32 {
		data32[i] = float32(rnd.Float64())
		data[i] = float64(data32[i])
	}
	return mat.NewDense(n, n, data), blas32.General{Rows: n, Cols: n, Stride: n, Data: data32}
}

// SPD returns A·Aᵗ + I, which is symmetric positive definite for any real
// square A. a is not modified.
func SPD(a mat.Matrix) *mat.SymDense {
	n, _ := a.Dims()
	var s mat.SymDense
	s.SymOuterK(1, a)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, s.At(i, i)+1)
	}
	return &s
}

// WorkingSetBytes estimates the peak memory a sweep of size n needs.
func WorkingSetBytes(n int, p Precision) uint64 {
	elems := uint64(n) * uint64(n)
	bytes := elems * 8 * workingSetMatrices
	if p == Float32 {
		// A32, B32 and one single-precision result.
		bytes += elems * 4 * 3
	}
	return bytes
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
