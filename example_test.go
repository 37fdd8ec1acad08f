package linalgbench_test

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/alexshd/linalgbench"
)

func ExampleRun() {
	cfg := linalgbench.DefaultConfig()
	cfg.Sizes = []int{10, 50, 100}
	cfg.Runs = 5

	results, err := linalgbench.Run(context.Background(), cfg, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	for _, fit := range linalgbench.FitScaling(results) {
		fmt.Printf("%s ~ n^%.2f\n", fit.Name, fit.Exponent)
	}
}

func ExampleMeasure() {
	in := linalgbench.NewInputs(64, linalgbench.Float64, rand.New(rand.NewPCG(1, 1)))

	for _, k := range linalgbench.Kernels(linalgbench.DefaultConfig()) {
		samples, err := linalgbench.Measure(k.Prepare(in), 3)
		if err != nil {
			log.Fatal(err)
		}
		s := linalgbench.Summarize(samples)
		fmt.Printf("%s: median %.2e s\n", k.Name, s.Median)
	}
}

func ExampleKernelNames() {
	for _, name := range linalgbench.KernelNames(linalgbench.DefaultConfig()) {
		fmt.Println(name)
	}
	// Output:
	// Addition
	// Multiplication
	// Inversion
	// LU Decomposition
	// Cholesky Decomposition
	// QR Decomposition
	// Schur Decomposition
	// SVD
}
