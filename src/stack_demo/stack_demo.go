package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"dsa_exercises/src/adapters"
	"dsa_exercises/src/console"
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func run(out io.Writer, logger *slog.Logger, values []int) error {
	s := adapters.NewStackFromQueues[int]()
	for _, v := range values {
		s.Push(v)
		logger.Debug("push", "value", v, "len", s.Len(), "transfers", s.Transfers())
	}

	if top, err := s.Top(); err == nil {
		fmt.Fprintln(out, "Top element:", top)

		if _, err := s.Pop(); err != nil {
			return err
		}
		if top, err := s.Top(); err == nil {
			fmt.Fprintln(out, "Top element after pop:", top)
		}
		fmt.Fprintln(out, "Is stack empty?", yesNo(s.IsEmpty()))
	}

	for !s.IsEmpty() {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Popped:", v)
	}
	fmt.Fprintln(out, "Is stack empty?", yesNo(s.IsEmpty()))

	if _, err := s.Top(); errors.Is(err, adapters.ErrEmptyCollection) {
		fmt.Fprintln(out, "Top on empty stack:", err)
	}
	if _, err := s.Pop(); errors.Is(err, adapters.ErrEmptyCollection) {
		fmt.Fprintln(out, "Pop on empty stack:", err)
	}
	return nil
}

func main() {
	values := []int{1, 2, 3}
	var debug bool

	flag.Func("values", "values to push, separated by commas or whitespace (default \"1 2 3\")", func(s string) error {
		v, err := console.ParseInts(s)
		if err != nil {
			return err
		}
		values = v
		return nil
	})
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if err := run(os.Stdout, console.NewLogger(os.Stderr, debug), values); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
