package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"dsa_exercises/src/console"
	"dsa_exercises/src/workload"
)

type config struct {
	adapter   string
	ops       int
	seed      int64
	rates     workload.Rates
	tracePath string
	outPath   string
}

func (cfg *config) validate() []string {
	var problems []string
	switch cfg.adapter {
	case "queue", "stack", "both":
	default:
		problems = append(problems, fmt.Sprintf("Unknown adapter %q, must be queue, stack or both", cfg.adapter))
	}
	if cfg.tracePath == "" && cfg.ops <= 0 {
		problems = append(problems, "Must specify a positive number of operations")
	}
	if cfg.tracePath != "" && cfg.outPath != "" {
		problems = append(problems, "Cannot write a trace while replaying one")
	}
	return problems
}

func loadOps(cfg *config, logger *slog.Logger) ([]workload.Op, error) {
	if cfg.tracePath != "" {
		ops, err := workload.LoadTrace(cfg.tracePath)
		if err != nil {
			return nil, fmt.Errorf("loading trace %q: %w", cfg.tracePath, err)
		}
		logger.Debug("loaded trace", "path", cfg.tracePath, "ops", len(ops))
		return ops, nil
	}

	ops, err := workload.Generate(rand.New(rand.NewSource(cfg.seed)), cfg.ops, cfg.rates)
	if err != nil {
		return nil, err
	}
	logger.Debug("generated trace", "seed", cfg.seed, "ops", len(ops))

	if cfg.outPath != "" {
		if err := writeTraceFile(cfg.outPath, ops); err != nil {
			return nil, fmt.Errorf("writing trace %q: %w", cfg.outPath, err)
		}
		logger.Debug("wrote trace", "path", cfg.outPath)
	}
	return ops, nil
}

func writeTraceFile(path string, ops []workload.Op) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return workload.WriteTrace(file, ops)
}

func run(cfg *config, out io.Writer, logger *slog.Logger) error {
	ops, err := loadOps(cfg, logger)
	if err != nil {
		return err
	}

	runners := []func([]workload.Op) (*workload.Report, error){}
	if cfg.adapter == "queue" || cfg.adapter == "both" {
		runners = append(runners, workload.RunQueue)
	}
	if cfg.adapter == "stack" || cfg.adapter == "both" {
		runners = append(runners, workload.RunStack)
	}

	for i, runFn := range runners {
		report, err := runFn(ops)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, report)
	}
	return nil
}

func main() {
	cfg := new(config)
	var debug bool

	flag.StringVar(&cfg.adapter, "adapter", "both", "The adapter to measure: queue, stack or both")
	flag.IntVar(&cfg.ops, "ops", 1000, "The number of operations to generate")
	flag.Int64Var(&cfg.seed, "seed", 1, "The random seed of the generator")
	flag.Float64Var(&cfg.rates.Insert, "insert-rate", 1.0, "The arrival rate of insert operations")
	flag.Float64Var(&cfg.rates.Remove, "remove-rate", 0.8, "The arrival rate of remove operations")
	flag.Float64Var(&cfg.rates.Peek, "peek-rate", 0.2, "The arrival rate of peek operations")
	flag.StringVar(&cfg.tracePath, "trace", "", "Replay the trace in this file instead of generating one")
	flag.StringVar(&cfg.outPath, "out", "", "Write the generated trace to this file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")

	flag.Parse()

	if problems := cfg.validate(); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, p)
		}
		os.Exit(1)
	}

	logger := console.NewLogger(os.Stderr, debug)
	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("amortize failed", "err", err)
		os.Exit(1)
	}
}
