// Command linalgbench times dense linear-algebra routines over a sweep of
// matrix sizes and prints mean ± standard deviation per routine.
//
// Without flags it runs the fixed sweep: sizes 10 to 10000, 10 runs,
// float64.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/alexshd/linalgbench"
	"github.com/lmittmann/tint"
)

// sizeList is a comma separated list of matrix sizes.
type sizeList []int

func (s *sizeList) String() string {
	parts := make([]string, len(*s))
	for i, n := range *s {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (s *sizeList) Set(v string) error {
	var sizes []int
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("size %q: %w", part, err)
		}
		sizes = append(sizes, n)
	}
	*s = sizes
	return nil
}

func main() {
	cfg := linalgbench.DefaultConfig()
	sizes := sizeList(cfg.Sizes)

	flag.Var(&sizes, "sizes", "comma separated matrix sizes")
	flag.IntVar(&cfg.Runs, "runs", cfg.Runs, "timed calls per kernel")
	flag.TextVar(&cfg.Precision, "precision", cfg.Precision, "element type: float64 or float32")
	flag.TextVar(&cfg.Backend, "backend", cfg.Backend, "linear-algebra library: gonum or lvlath")
	flag.IntVar(&cfg.MaxProcs, "procs", cfg.MaxProcs, "GOMAXPROCS during the sweep (0 = leave unchanged)")
	flag.BoolVar(&cfg.IncludeDeterminant, "det", false, "include the determinant kernel")
	flag.BoolVar(&cfg.IsolateCholeskyInput, "isolate-cholesky", false, "build A·Aᵗ + I outside the timed Cholesky call")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "input generator seed (0 = random)")
	flag.Uint64Var(&cfg.MemoryBudget, "mem-budget", 0, "max estimated bytes per size (0 = unlimited)")
	jsonPath := flag.String("json", "", "write a JSON report to this file")
	plotPath := flag.String("plot", "", "write a latency plot to this file (.png, .svg, .pdf)")
	chartPath := flag.String("chart", "", "write an HTML latency chart to this file")
	verbose := flag.Bool("v", false, "log progress")
	flag.Parse()
	cfg.Sizes = sizes

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
	slog.SetDefault(logger)
	cfg.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := linalgbench.Run(ctx, cfg, os.Stdout)
	if err != nil {
		logger.Error("benchmark aborted", "err", err, "completed_sizes", len(results))
		stop()
		os.Exit(1)
	}
	logger.Debug("sweep done", "elapsed", time.Since(start))

	if err := writeReports(results, *jsonPath, *plotPath, *chartPath); err != nil {
		logger.Error("report", "err", err)
		stop()
		os.Exit(1)
	}
}

func writeReports(results []linalgbench.SizeResult, jsonPath, plotPath, chartPath string) error {
	if jsonPath != "" {
		if err := writeFile(jsonPath, func(f *os.File) error {
			return linalgbench.WriteJSON(f, results)
		}); err != nil {
			return err
		}
	}
	if plotPath != "" {
		format := strings.TrimPrefix(plotExt(plotPath), ".")
		if err := writeFile(plotPath, func(f *os.File) error {
			return linalgbench.WritePlot(f, results, format)
		}); err != nil {
			return err
		}
	}
	if chartPath != "" {
		if err := writeFile(chartPath, func(f *os.File) error {
			return linalgbench.WriteChart(f, results)
		}); err != nil {
			return err
		}
	}
	return nil
}

func plotExt(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return strings.ToLower(path[i:])
	}
	return ".png"
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("report written", "path", path)
	return nil
}
