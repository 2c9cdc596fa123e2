// Package console holds the input parsing and logger setup shared by the
// exercise programs.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidInput is reported when standard input does not hold the expected
// number.
var ErrInvalidInput = errors.New("invalid input")

// ReadInt reads the first whitespace separated token of r as a signed
// integer that must fit in bitSize bits.
func ReadInt(r io.Reader, bitSize int) (int64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}
		return 0, fmt.Errorf("%w: no integer given", ErrInvalidInput)
	}

	tok := scanner.Text()
	v, err := strconv.ParseInt(tok, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a %d-bit integer", ErrInvalidInput, tok, bitSize)
	}
	return v, nil
}

// ParseInts parses a list of integers separated by whitespace or commas, as
// given to the -values flag of the demos.
func ParseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	values := make([]int, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, tok)
		}
		values = append(values, v)
	}
	return values, nil
}

// NewLogger returns a text logger on w, at debug level when debug is set.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
