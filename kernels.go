package linalgbench

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/mat"
)

// Kernel names, in sweep order.
const (
	NameAddition       = "Addition"
	NameMultiplication = "Multiplication"
	NameInversion      = "Inversion"
	NameDeterminant    = "Determinant"
	NameLU             = "LU Decomposition"
	NameCholesky       = "Cholesky Decomposition"
	NameQR             = "QR Decomposition"
	NameSchur          = "Schur Decomposition"
	NameSVD            = "SVD"
)

// Operation is one call into the linear-algebra backend.
type Operation func() error

// Kernel is a benchmarked routine. Prepare binds it to the inputs of one
// size; any work done by Prepare itself is outside the timed region.
type Kernel struct {
	Name    string
	Prepare func(in *Inputs) Operation
}

// Kernels returns the kernels a sweep with cfg runs, in order.
func Kernels(cfg Config) []Kernel {
	if cfg.Backend == Lvlath {
		return lvlathKernels()
	}
	ks := []Kernel{
		{Name: NameAddition, Prepare: addition},
		{Name: NameMultiplication, Prepare: multiplication},
		{Name: NameInversion, Prepare: inversion},
	}
	if cfg.IncludeDeterminant {
		ks = append(ks, Kernel{Name: NameDeterminant, Prepare: determinant})
	}
	return append(ks,
		Kernel{Name: NameLU, Prepare: luDecomposition},
		Kernel{Name: NameCholesky, Prepare: choleskyDecomposition(cfg.IsolateCholeskyInput)},
		Kernel{Name: NameQR, Prepare: qrDecomposition},
		Kernel{Name: NameSchur, Prepare: schurDecomposition},
		Kernel{Name: NameSVD, Prepare: svdDecomposition},
	)
}

// KernelNames returns the names of Kernels(cfg).
func KernelNames(cfg Config) []string {
	ks := Kernels(cfg)
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.Name
	}
	return names
}

func addition(in *Inputs) Operation {
	if in.Precision == Float32 {
		return func() error {
			c := make([]float32, len(in.B32.Data))
			copy(c, in.B32.Data)
			blas32.Axpy(1,
				blas32.Vector{N: len(c), Inc: 1, Data: in.A32.Data},
				blas32.Vector{N: len(c), Inc: 1, Data: c})
			return nil
		}
	}
	return func() error {
		var c mat.Dense
		c.Add(in.A, in.B)
		return nil
	}
}

func multiplication(in *Inputs) Operation {
	if in.Precision == Float32 {
		return func() error {
			c := blas32.General{Rows: in.N, Cols: in.N, Stride: in.N, Data: make([]float32, in.N*in.N)}
			blas32.Gemm(blas.NoTrans, blas.NoTrans, 1, in.A32, in.B32, 0, c)
			return nil
		}
	}
	return func() error {
		var c mat.Dense
		c.Mul(in.A, in.B)
		return nil
	}
}

func inversion(in *Inputs) Operation {
	return func() error {
		var inv mat.Dense
		err := inv.Inverse(in.A)
		if err == nil {
			return nil
		}
		// A finite condition number is a warning: the inverse was computed.
		var cond mat.Condition
		if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
			return nil
		}
		return numericalf("inverse: %v", err)
	}
}

func determinant(in *Inputs) Operation {
	return func() error {
		if d := mat.Det(in.A); math.IsNaN(d) {
			return numericalf("determinant is NaN")
		}
		return nil
	}
}

func luDecomposition(in *Inputs) Operation {
	return func() error {
		var lu mat.LU
		lu.Factorize(in.A)
		return nil
	}
}

// choleskyDecomposition rebuilds A·Aᵗ + I inside every call unless
// isolate is set, in which case it is built once by Prepare.
func choleskyDecomposition(isolate bool) func(in *Inputs) Operation {
	return func(in *Inputs) Operation {
		if isolate {
			spd := SPD(in.A)
			return func() error { return factorCholesky(spd) }
		}
		return func() error { return factorCholesky(SPD(in.A)) }
	}
}

func factorCholesky(a mat.Symmetric) error {
	var chol mat.Cholesky
	if !chol.Factorize(a) {
		return numericalf("cholesky: matrix is not positive definite")
	}
	return nil
}

func qrDecomposition(in *Inputs) Operation {
	return func() error {
		var qr mat.QR
		qr.Factorize(in.A)
		return nil
	}
}

func schurDecomposition(in *Inputs) Operation {
	return func() error {
		var s Schur
		return s.Factorize(in.A)
	}
}

func svdDecomposition(in *Inputs) Operation {
	return func() error {
		var svd mat.SVD
		if !svd.Factorize(in.A, mat.SVDThin) {
			return numericalf("svd: factorization failed")
		}
		return nil
	}
}
