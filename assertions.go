package linalgbench

import (
	"math"
	"testing"
)

// AssertSamples verifies the sample sequence of one kernel: exactly runs
// entries (the warm-up call is never recorded) and no negative duration.
func AssertSamples(t testing.TB, r OperationResult, runs int) {
	t.Helper()

	if len(r.Samples) != runs {
		t.Errorf("%s: %d samples, want %d", r.Name, len(r.Samples), runs)
	}
	for i, d := range r.Samples {
		if d < 0 {
			t.Errorf("%s: sample %d is negative (%v)", r.Name, i, d)
		}
	}
}

// AssertSummary recomputes the arithmetic mean and population standard
// deviation of r.Samples and compares them with r.Stats within tol
// (relative to the mean).
func AssertSummary(t testing.TB, r OperationResult, tol float64) {
	t.Helper()

	xs := Seconds(r.Samples)
	if len(xs) == 0 {
		if r.Stats != (Statistics{}) {
			t.Errorf("%s: non-zero stats for empty samples: %+v", r.Name, r.Stats)
		}
		return
	}

	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var variance float64
	for _, x := range xs {
		variance += (x - mean) * (x - mean)
	}
	std := math.Sqrt(variance / float64(len(xs)))

	scale := math.Max(math.Abs(mean), 1e-12)
	if math.Abs(r.Stats.Mean-mean) > tol*scale {
		t.Errorf("%s: mean %g, recomputed %g", r.Name, r.Stats.Mean, mean)
	}
	if math.Abs(r.Stats.StdDev-std) > tol*scale {
		t.Errorf("%s: stddev %g, recomputed %g", r.Name, r.Stats.StdDev, std)
	}
}

// AssertKernelOrder verifies that res reports exactly the given kernels, in
// order.
func AssertKernelOrder(t testing.TB, res SizeResult, names []string) {
	t.Helper()

	if len(res.Operations) != len(names) {
		t.Fatalf("size %d: %d kernels, want %d", res.Size, len(res.Operations), len(names))
	}
	for i, op := range res.Operations {
		if op.Name != names[i] {
			t.Errorf("size %d: kernel %d is %q, want %q", res.Size, i, op.Name, names[i])
		}
	}
}

// AssertSweep runs every assertion on the results of a sweep with cfg.
func AssertSweep(t *testing.T, results []SizeResult, cfg Config) {
	t.Helper()

	if len(results) != len(cfg.Sizes) {
		t.Fatalf("%d size results, want %d", len(results), len(cfg.Sizes))
	}

	names := KernelNames(cfg)
	for i, res := range results {
		if res.Size != cfg.Sizes[i] {
			t.Errorf("result %d has size %d, want %d", i, res.Size, cfg.Sizes[i])
		}
		AssertKernelOrder(t, res, names)
		for _, op := range res.Operations {
			AssertSamples(t, op, cfg.Runs)
			AssertSummary(t, op, 1e-9)
		}
	}
}
