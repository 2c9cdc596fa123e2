// Command reverse reads one integer and prints it with its decimal digits
// reversed, or 0 when the reversal does not fit a signed 32-bit integer.
// Input that does not itself fit 32 bits is rejected as invalid rather than
// clamped.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"dsa_exercises/src/arith"
	"dsa_exercises/src/console"
)

func run(in io.Reader, out io.Writer, logger *slog.Logger, prompt bool) error {
	if prompt {
		fmt.Fprint(out, "Enter an integer: ")
	}
	n, err := console.ReadInt(in, 32)
	if err != nil {
		return err
	}

	reversed, err := arith.ReverseChecked(int32(n))
	if err != nil {
		logger.Debug("reversal out of range, printing 0", "input", n, "err", err)
	}
	fmt.Fprintf(out, "Reversed integer: %d\n", reversed)
	return nil
}

func main() {
	var noPrompt, debug bool
	flag.BoolVar(&noPrompt, "no-prompt", false, "Do not print the input prompt")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: reverse [flags] < input")
		fmt.Fprintln(flag.CommandLine.Output(), "Input must fit a signed 32-bit integer; larger values are rejected, not clamped.")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := console.NewLogger(os.Stderr, debug)
	if err := run(os.Stdin, os.Stdout, logger, !noPrompt); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
