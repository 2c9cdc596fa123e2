package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa_exercises/src/console"
)

func TestRun(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "Fibonacci number is: 0\n"},
		{"1", "Fibonacci number is: 1\n"},
		{"10", "Fibonacci number is: 55\n"},
		{"20", "Fibonacci number is: 6765\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(strings.NewReader(tt.input), &out, console.NewLogger(io.Discard, false), false))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestRunPrompt(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader("5\n"), &out, console.NewLogger(io.Discard, false), true))
	assert.Equal(t, "Enter a number: Fibonacci number is: 5\n", out.String())
}

func TestRunRejectsOutOfRange(t *testing.T) {
	for _, input := range []string{"-1", "93", "x"} {
		var out bytes.Buffer
		err := run(strings.NewReader(input), &out, console.NewLogger(io.Discard, false), false)
		require.ErrorIs(t, err, console.ErrInvalidInput, "input %q", input)
		assert.Empty(t, out.String())
	}
}
