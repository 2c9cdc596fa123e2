package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"dsa_exercises/src/arith"
	"dsa_exercises/src/console"
)

func run(in io.Reader, out io.Writer, prompt bool) error {
	if prompt {
		fmt.Fprint(out, "Enter an integer: ")
	}
	n, err := console.ReadInt(in, 64)
	if err != nil {
		return err
	}

	if arith.IsPalindrome(n) {
		fmt.Fprintf(out, "%d is a palindrome.\n", n)
	} else {
		fmt.Fprintf(out, "%d is not a palindrome.\n", n)
	}
	return nil
}

func main() {
	var noPrompt bool
	flag.BoolVar(&noPrompt, "no-prompt", false, "Do not print the input prompt")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, !noPrompt); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
