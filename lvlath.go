package linalgbench

import (
	"fmt"

	lvmatrix "github.com/katalvlaran/lvlath/matrix"
	"gonum.org/v1/gonum/mat"
)

// lvlathKernels is the subset of kernels lvlath implements, in sweep order.
// lvlath has no determinant, Cholesky, Schur or SVD routine.
func lvlathKernels() []Kernel {
	return []Kernel{
		{Name: NameAddition, Prepare: lvlathOp(func(in *Inputs) error {
			_, err := lvmatrix.Add(in.LA, in.LB)
			return err
		})},
		{Name: NameMultiplication, Prepare: lvlathOp(func(in *Inputs) error {
			_, err := lvmatrix.Mul(in.LA, in.LB)
			return err
		})},
		{Name: NameInversion, Prepare: lvlathOp(func(in *Inputs) error {
			_, err := lvmatrix.Inverse(in.LA)
			return err
		})},
		{Name: NameLU, Prepare: lvlathOp(func(in *Inputs) error {
			_, _, err := lvmatrix.LU(in.LA)
			return err
		})},
		{Name: NameQR, Prepare: lvlathOp(func(in *Inputs) error {
			_, _, err := lvmatrix.QR(in.LA)
			return err
		})},
	}
}

func lvlathOp(call func(in *Inputs) error) func(in *Inputs) Operation {
	return func(in *Inputs) Operation {
		return func() error {
			if err := call(in); err != nil {
				return numericalf("lvlath: %v", err)
			}
			return nil
		}
	}
}

// AttachLvlath copies A and B into lvlath matrices so the lvlath kernels
// can run on the same values as the gonum ones.
func (in *Inputs) AttachLvlath() error {
	var err error
	if in.LA, err = toLvlath(in.A); err != nil {
		return fmt.Errorf("lvlath A: %w", err)
	}
	if in.LB, err = toLvlath(in.B); err != nil {
		return fmt.Errorf("lvlath B: %w", err)
	}
	return nil
}

func toLvlath(m *mat.Dense) (*lvmatrix.Dense, error) {
	r, c := m.Dims()
	d, err := lvmatrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := d.Set(i, j, m.At(i, j)); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}
