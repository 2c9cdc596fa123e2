package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		bitSize int
		want    int64
		wantErr bool
	}{
		{"plain", "121\n", 64, 121, false},
		{"negative", "  -42  ", 64, -42, false},
		{"first token only", "7 8 9", 64, 7, false},
		{"int32 max", "2147483647", 32, 2147483647, false},
		{"int32 overflow", "2147483648", 32, 0, true},
		{"not a number", "abc", 64, 0, true},
		{"empty", "", 64, 0, true},
		{"blank lines", "\n\n", 64, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadInt(strings.NewReader(tt.input), tt.bitSize)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInts(t *testing.T) {
	got, err := ParseInts("1, 2,3  -4")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, -4}, got)

	got, err = ParseInts("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseInts("1,x")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	NewLogger(&buf, true).Debug("shown", "k", 1)
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "k=1")
}
