package linalgbench

import (
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"
)

// Schur is the real Schur factorization A = Z·T·Zᵗ of a square matrix.
// Z is orthogonal and T is upper quasi-triangular: its diagonal is made of
// 1×1 blocks (real eigenvalues) and 2×2 blocks (complex conjugate pairs).
//
// gonum/mat has no Schur type, so Factorize drives the LAPACK routines
// directly: Hessenberg reduction (Dgehrd), generation of the orthogonal
// factor (Dorghr) and the QR iteration (Dhseqr).
type Schur struct {
	t, z   *mat.Dense
	wr, wi []float64
}

// Factorize computes the Schur factorization of a. It returns mat.ErrSquare
// for non-square input and ErrNumericalFailure when the QR iteration does
// not converge.
func (s *Schur) Factorize(a mat.Matrix) error {
	r, c := a.Dims()
	if r != c {
		return mat.ErrSquare
	}
	if r == 0 {
		return mat.ErrZeroLength
	}
	n := r

	t := mat.DenseCopyOf(a)
	z := mat.NewDense(n, n, nil)
	h := t.RawMatrix()
	q := z.RawMatrix()

	var impl gonum.Implementation
	tau := make([]float64, n-1)
	wr := make([]float64, n)
	wi := make([]float64, n)

	// Workspace queries.
	work := make([]float64, 1)
	lwork := n
	impl.Dgehrd(n, 0, n-1, h.Data, h.Stride, tau, work, -1)
	lwork = max(lwork, int(work[0]))
	impl.Dorghr(n, 0, n-1, h.Data, h.Stride, tau, work, -1)
	lwork = max(lwork, int(work[0]))
	impl.Dhseqr(lapack.EigenvaluesAndSchur, lapack.SchurOrig, n, 0, n-1,
		h.Data, h.Stride, wr, wi, q.Data, q.Stride, work, -1)
	lwork = max(lwork, int(work[0]))
	work = make([]float64, lwork)

	impl.Dgehrd(n, 0, n-1, h.Data, h.Stride, tau, work, lwork)

	// The reflectors below the subdiagonal of h build Z; H itself is the
	// upper Hessenberg part.
	z.Copy(t)
	impl.Dorghr(n, 0, n-1, q.Data, q.Stride, tau, work, lwork)
	for i := 2; i < n; i++ {
		for j := 0; j < i-1; j++ {
			h.Data[i*h.Stride+j] = 0
		}
	}

	unconverged := impl.Dhseqr(lapack.EigenvaluesAndSchur, lapack.SchurOrig, n, 0, n-1,
		h.Data, h.Stride, wr, wi, q.Data, q.Stride, work, lwork)
	if unconverged > 0 {
		return numericalf("schur: %d eigenvalues did not converge", unconverged)
	}

	s.t, s.z, s.wr, s.wi = t, z, wr, wi
	return nil
}

// T returns a copy of the quasi-triangular Schur form.
func (s *Schur) T() *mat.Dense {
	if s.t == nil {
		return nil
	}
	return mat.DenseCopyOf(s.t)
}

// Z returns a copy of the orthogonal Schur vectors.
func (s *Schur) Z() *mat.Dense {
	if s.z == nil {
		return nil
	}
	return mat.DenseCopyOf(s.z)
}

// Eigenvalues returns the eigenvalues in the order they appear on the
// diagonal of T.
func (s *Schur) Eigenvalues() []complex128 {
	ev := make([]complex128, len(s.wr))
	for i := range ev {
		ev[i] = complex(s.wr[i], s.wi[i])
	}
	return ev
}
