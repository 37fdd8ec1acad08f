// Package linalgbench measures the latency of dense linear-algebra routines.
//
// # Overview
//
// For each matrix size of a sweep, linalgbench draws two random n×n
// matrices A and B with entries uniform in [0, 1) and times the gonum
// implementations of:
//
//   - Addition: A + B
//   - Multiplication: A·B
//   - Inversion: A⁻¹
//   - Determinant: det(A) (opt-in, see Config.IncludeDeterminant)
//   - LU Decomposition: PA = LU
//   - Cholesky Decomposition: of A·Aᵗ + I
//   - QR Decomposition: A = QR
//   - Schur Decomposition: A = Z·T·Zᵗ
//   - SVD: thin singular value decomposition
//
// Every kernel is called once untimed, then Config.Runs times under the
// clock. The clock brackets the library call only. The Cholesky input
// A·Aᵗ + I is rebuilt inside each timed call unless
// Config.IsolateCholeskyInput is set.
//
// Config.Backend switches to lvlath, which times only Addition,
// Multiplication, Inversion, LU Decomposition and QR Decomposition.
// The sweep runs with GOMAXPROCS set to Config.MaxProcs (1 by default)
// and restores the previous value when it returns.
//
// # Quick Start
//
//	results, err := linalgbench.Run(ctx, linalgbench.DefaultConfig(), os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Output, one block per size:
//
//	Benchmarking for 10x10 matrices (float64)
//	Runs: 10
//	Addition: 1.52e-07 s ± 2.10e-08 s
//	Multiplication: 1.01e-06 s ± 5.33e-08 s
//	...
//
// # Reports
//
// FitScaling estimates the exponent k of t(n) ≈ c·nᵏ per kernel. WriteJSON,
// WritePlot and WriteChart export a sweep as JSON, an image (gonum/plot) or
// an HTML chart (go-echarts).
//
// # Execution model
//
// The sweep is sequential and blocking. A failing library call aborts it
// with an error wrapping ErrNumericalFailure. Go cannot recover from an out
// of memory condition, so Config.MemoryBudget turns oversized sizes into
// ErrResourceExhaustion before their matrices are allocated.
package linalgbench
