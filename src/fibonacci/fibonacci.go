package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"dsa_exercises/src/arith"
	"dsa_exercises/src/console"
)

func run(in io.Reader, out io.Writer, logger *slog.Logger, prompt bool) error {
	if prompt {
		fmt.Fprint(out, "Enter a number: ")
	}
	n, err := console.ReadInt(in, 64)
	if err != nil {
		return err
	}
	if n < 0 || n > arith.MaxFibonacciInput {
		return fmt.Errorf("%w: n must be between 0 and %d, got %d", console.ErrInvalidInput, arith.MaxFibonacciInput, n)
	}

	start := time.Now()
	fib := arith.Fibonacci(n)
	logger.Debug("computed fibonacci", "n", n, "elapsed", time.Since(start))

	fmt.Fprintf(out, "Fibonacci number is: %d\n", fib)
	return nil
}

func main() {
	var noPrompt, debug bool
	flag.BoolVar(&noPrompt, "no-prompt", false, "Do not print the input prompt")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	logger := console.NewLogger(os.Stderr, debug)
	if err := run(os.Stdin, os.Stdout, logger, !noPrompt); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
