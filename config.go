package linalgbench

import (
	"fmt"
	"log/slog"
)

// Precision is the element type of the benchmarked matrices.
type Precision int

const (
	Float64 Precision = iota // double precision (default)
	Float32                  // single precision
)

// String returns the Go name of the element type.
func (p Precision) String() string {
	switch p {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Precision) MarshalText() ([]byte, error) {
	if p != Float64 && p != Float32 {
		return nil, fmt.Errorf("%w: unknown precision %d", ErrInvalidConfig, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the Go
// type names and the aliases "double" and "single".
func (p *Precision) UnmarshalText(text []byte) error {
	switch string(text) {
	case "float64", "double", "f64":
		*p = Float64
	case "float32", "single", "f32":
		*p = Float32
	default:
		return fmt.Errorf("%w: unknown precision %q", ErrInvalidConfig, text)
	}
	return nil
}

// ElementSize returns the size in bytes of one matrix element.
func (p Precision) ElementSize() int {
	if p == Float32 {
		return 4
	}
	return 8
}

// Backend is the linear-algebra library a sweep times.
type Backend int

const (
	Gonum  Backend = iota // gonum.org/v1/gonum: every kernel (default)
	Lvlath                // github.com/katalvlaran/lvlath/matrix: Addition, Multiplication, Inversion, LU, QR
)

// String returns the short library name.
func (b Backend) String() string {
	switch b {
	case Gonum:
		return "gonum"
	case Lvlath:
		return "lvlath"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Backend) MarshalText() ([]byte, error) {
	if b != Gonum && b != Lvlath {
		return nil, fmt.Errorf("%w: unknown backend %d", ErrInvalidConfig, int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Backend) UnmarshalText(text []byte) error {
	switch string(text) {
	case "gonum":
		*b = Gonum
	case "lvlath":
		*b = Lvlath
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, text)
	}
	return nil
}

// Config controls a benchmark sweep.
type Config struct {
	Sizes     []int     // Matrix side lengths, benchmarked in order
	Runs      int       // Timed calls per kernel (warm-up excluded)
	Precision Precision // Element type of the inputs
	Backend   Backend   // Library under test

	// MaxProcs is the GOMAXPROCS value for the duration of the sweep
	// (0 = leave the runtime setting alone). The default of 1 keeps the
	// backend's worker goroutines on a single thread.
	MaxProcs int

	// IncludeDeterminant adds the Determinant kernel to the sweep.
	// It is off by default, so each size reports eight kernels.
	IncludeDeterminant bool

	// IsolateCholeskyInput builds A·Aᵗ + I once per size instead of inside
	// every timed Cholesky call.
	IsolateCholeskyInput bool

	Seed         uint64 // Input generator seed (0 = random)
	MemoryBudget uint64 // Max estimated working set per size in bytes (0 = unlimited)

	Logger *slog.Logger // Progress logger (nil = slog.Default())
}

// DefaultConfig returns the fixed sweep: seven sizes, ten runs, float64,
// gonum on one thread.
func DefaultConfig() Config {
	return Config{
		Sizes:     []int{10, 50, 100, 500, 1000, 5000, 10000},
		Runs:      10,
		Precision: Float64,
		Backend:   Gonum,
		MaxProcs:  1,
	}
}

// Validate reports whether the configuration can drive a sweep.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("%w: size %d must be positive", ErrInvalidConfig, n)
		}
	}
	if c.Runs <= 0 {
		return fmt.Errorf("%w: runs %d must be positive", ErrInvalidConfig, c.Runs)
	}
	if c.Backend != Gonum && c.Backend != Lvlath {
		return fmt.Errorf("%w: unknown backend %v", ErrInvalidConfig, c.Backend)
	}
	if c.MaxProcs < 0 {
		return fmt.Errorf("%w: maxprocs %d must not be negative", ErrInvalidConfig, c.MaxProcs)
	}
	if c.Precision != Float64 && c.Precision != Float32 {
		return fmt.Errorf("%w: unknown precision %v", ErrInvalidConfig, c.Precision)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
