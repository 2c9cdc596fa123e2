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

func run(out io.Writer, logger *slog.Logger, values []int) error {
	q := adapters.NewQueueFromStacks[int]()
	for _, v := range values {
		q.Enqueue(v)
	}

	for !q.IsEmpty() {
		front, err := q.Front()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Front element is:", front)
		logger.Debug("front", "value", front, "len", q.Len(), "transfers", q.Transfers())

		if _, err := q.Dequeue(); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Queue is empty")

	// empty reads are reported, not fatal
	if _, err := q.Front(); errors.Is(err, adapters.ErrEmptyCollection) {
		fmt.Fprintln(out, "Front on empty queue:", err)
	}
	if _, err := q.Dequeue(); errors.Is(err, adapters.ErrEmptyCollection) {
		fmt.Fprintln(out, "Dequeue on empty queue:", err)
	}
	return nil
}

func main() {
	values := []int{1, 2, 3}
	var debug bool

	flag.Func("values", "values to enqueue, separated by commas or whitespace (default \"1 2 3\")", func(s string) error {
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
