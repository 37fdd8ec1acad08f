package linalgbench

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"time"
)

// OperationResult contains the measurements of one kernel at one size.
type OperationResult struct {
	Name    string          `json:"name"`
	Samples []time.Duration `json:"samples_ns"` // One entry per timed call, warm-up excluded
	Stats   Statistics      `json:"stats"`
}

// SizeResult contains the measurements of every kernel at one size.
type SizeResult struct {
	Size       int               `json:"size"`
	Precision  Precision         `json:"precision"`
	Backend    Backend           `json:"backend"`
	MaxProcs   int               `json:"max_procs"` // GOMAXPROCS while the size was measured
	Runs       int               `json:"runs"`
	Operations []OperationResult `json:"operations"`
}

// Operation returns the result of the named kernel.
func (r SizeResult) Operation(name string) (OperationResult, bool) {
	for _, op := range r.Operations {
		if op.Name == name {
			return op, true
		}
	}
	return OperationResult{}, false
}

// Measure calls op once untimed, then runs more times, timing each call on
// its own. The clock brackets the call only; nothing op returns is
// inspected inside the timed region. A panic raised by the backend is
// reported as ErrNumericalFailure.
func Measure(op Operation, runs int) (samples []time.Duration, err error) {
	defer func() {
		if r := recover(); r != nil {
			samples = nil
			err = numericalf("backend panic: %v", r)
		}
	}()

	// Warmup phase
	if err := op(); err != nil {
		return nil, fmt.Errorf("warm-up: %w", err)
	}

	samples = make([]time.Duration, 0, runs)
	for i := 0; i < runs; i++ {
		start := time.Now()
		err := op()
		elapsed := time.Since(start)

		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
		samples = append(samples, elapsed)
	}

	return samples, nil
}

// Run executes the sweep described by cfg: for every size in order it
// generates fresh inputs and measures every kernel, writing one block of
// text per size to w. It stops at the first error and returns the results
// of the sizes completed before it.
func Run(ctx context.Context, cfg Config, w io.Writer) ([]SizeResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	defer setMaxProcs(cfg.MaxProcs)()

	rnd := newRand(cfg.Seed)
	log := cfg.logger()
	results := make([]SizeResult, 0, len(cfg.Sizes))

	for _, n := range cfg.Sizes {
		in, err := allocate(cfg, n, rnd)
		if err != nil {
			return results, fmt.Errorf("size %d: %w", n, err)
		}
		result, err := runSize(ctx, cfg, in, w)
		if err != nil {
			return results, fmt.Errorf("size %d: %w", n, err)
		}
		results = append(results, result)
	}

	for _, fit := range FitScaling(results) {
		log.Info("scaling", "kernel", fit.Name, "exponent", fit.Exponent, "r2", fit.RSquared, "sizes", fit.Points)
	}

	return results, nil
}

// RunSize measures every kernel at a single size n.
func RunSize(ctx context.Context, cfg Config, n int, w io.Writer) (SizeResult, error) {
	cfg.Sizes = []int{n}
	if err := cfg.Validate(); err != nil {
		return SizeResult{}, err
	}
	defer setMaxProcs(cfg.MaxProcs)()

	in, err := allocate(cfg, n, newRand(cfg.Seed))
	if err != nil {
		return SizeResult{}, err
	}
	return runSize(ctx, cfg, in, w)
}

func allocate(cfg Config, n int, rnd *rand.Rand) (*Inputs, error) {
	if cfg.MemoryBudget > 0 {
		if need := WorkingSetBytes(n, cfg.Precision); need > cfg.MemoryBudget {
			return nil, fmt.Errorf("%w: %d bytes needed, budget %d", ErrResourceExhaustion, need, cfg.MemoryBudget)
		}
	}
	in := NewInputs(n, cfg.Precision, rnd)
	if cfg.Backend == Lvlath {
		if err := in.AttachLvlath(); err != nil {
			return nil, err
		}
	}
	return in, nil
}

// setMaxProcs sets GOMAXPROCS to n and returns a func restoring the
// previous value. n == 0 leaves the runtime alone.
func setMaxProcs(n int) func() {
	if n == 0 {
		return func() {}
	}
	old := runtime.GOMAXPROCS(n)
	return func() { runtime.GOMAXPROCS(old) }
}

// runSize measures every kernel on in.
func runSize(ctx context.Context, cfg Config, in *Inputs, w io.Writer) (SizeResult, error) {
	log := cfg.logger()
	kernels := Kernels(cfg)
	result := SizeResult{
		Size:       in.N,
		Precision:  in.Precision,
		Backend:    cfg.Backend,
		MaxProcs:   runtime.GOMAXPROCS(0),
		Runs:       cfg.Runs,
		Operations: make([]OperationResult, 0, len(kernels)),
	}

	if err := writeHeader(w, cfg.Backend, in.N, in.Precision, cfg.Runs); err != nil {
		return result, err
	}

	for _, k := range kernels {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		log.Debug("measuring", "kernel", k.Name, "size", in.N, "runs", cfg.Runs)
		samples, err := Measure(k.Prepare(in), cfg.Runs)
		if err != nil {
			return result, fmt.Errorf("%s: %w", k.Name, err)
		}

		op := OperationResult{Name: k.Name, Samples: samples, Stats: Summarize(samples)}
		result.Operations = append(result.Operations, op)
		if err := writeLine(w, op); err != nil {
			return result, err
		}
	}

	return result, nil
}
