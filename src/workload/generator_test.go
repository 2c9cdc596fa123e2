package workload

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	rates := Rates{Insert: 1, Remove: 0.7, Peek: 0.3}
	a, err := Generate(rand.New(rand.NewSource(42)), 500, rates)
	require.NoError(t, err)
	b, err := Generate(rand.New(rand.NewSource(42)), 500, rates)
	require.NoError(t, err)

	require.Len(t, a, 500)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different traces (-a +b):\n%s", diff)
	}
}

func TestGenerateInsertValuesCountUp(t *testing.T) {
	ops, err := Generate(rand.New(rand.NewSource(1)), 300, Rates{Insert: 2, Remove: 1})
	require.NoError(t, err)

	next := 1
	kinds := map[Kind]int{}
	for _, op := range ops {
		kinds[op.Kind]++
		if op.Kind == Insert {
			assert.Equal(t, next, op.Value)
			next++
		}
	}
	assert.Zero(t, kinds[Peek], "peek rate is zero")
	assert.Greater(t, kinds[Insert], kinds[Remove])
}

func TestGenerateSingleStream(t *testing.T) {
	ops, err := Generate(rand.New(rand.NewSource(9)), 10, Rates{Remove: 1})
	require.NoError(t, err)
	for _, op := range ops {
		assert.Equal(t, Remove, op.Kind)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Generate(rng, 10, Rates{})
	require.ErrorIs(t, err, ErrBadRates)

	_, err = Generate(rng, 10, Rates{Insert: 1, Remove: -1})
	require.ErrorIs(t, err, ErrBadRates)

	_, err = Generate(rng, -1, Rates{Insert: 1})
	require.Error(t, err)

	ops, err := Generate(rng, 0, Rates{Insert: 1})
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "insert", Insert.String())
	assert.Equal(t, "peek", Peek.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
	assert.Equal(t, "insert 5", Op{Kind: Insert, Value: 5}.String())
	assert.Equal(t, "remove", Op{Kind: Remove, Value: 5}.String())
}
