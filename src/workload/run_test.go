package workload

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa_exercises/src/adapters"
)

func inserts(values ...int) []Op {
	ops := make([]Op, len(values))
	for i, v := range values {
		ops[i] = Op{Kind: Insert, Value: v}
	}
	return ops
}

func TestRunQueueCosts(t *testing.T) {
	ops := append(inserts(1, 2, 3), Op{Kind: Peek}, Op{Kind: Remove}, Op{Kind: Remove}, Op{Kind: Remove}, Op{Kind: Remove})

	report, err := RunQueue(ops)
	require.NoError(t, err)

	// the first peek moves all three elements
	assert.Equal(t, []float64{1, 1, 1, 4, 1, 1, 1, 1}, report.Costs)
	assert.Equal(t, 8, report.Ops)
	assert.Equal(t, 1, report.EmptyHits)
	assert.Equal(t, 3, report.Transfers)
	assert.Equal(t, 0, report.FinalLen)
	assert.InDelta(t, 11.0/8.0, report.Mean, 1e-9)
	assert.Equal(t, 4.0, report.Max)
}

func TestRunStackCosts(t *testing.T) {
	ops := append(inserts(10, 20, 30), Op{Kind: Peek}, Op{Kind: Remove})

	report, err := RunStack(ops)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 1, 1}, report.Costs)
	assert.Equal(t, 3, report.Transfers)
	assert.Equal(t, 2, report.FinalLen)
	assert.Equal(t, 0, report.EmptyHits)
}

func TestRunEmptyTrace(t *testing.T) {
	report, err := RunQueue(nil)
	require.NoError(t, err)
	assert.Zero(t, report.Ops)
	assert.Zero(t, report.Max)
	assert.Zero(t, report.StdDev)
}

func TestRunRandomTraces(t *testing.T) {
	ops, err := Generate(rand.New(rand.NewSource(2024)), 5000, Rates{Insert: 1, Remove: 0.9, Peek: 0.4})
	require.NoError(t, err)

	q, err := RunQueue(ops)
	require.NoError(t, err)
	s, err := RunStack(ops)
	require.NoError(t, err)

	// every element crosses between the stacks at most once
	assert.LessOrEqual(t, q.Mean, 2.0)
	assert.Equal(t, q.FinalLen, s.FinalLen)
	assert.Equal(t, q.EmptyHits, s.EmptyHits)
}

// lossyQueue drops every second inserted value.
type lossyQueue struct {
	Target
	n int
}

func (l *lossyQueue) Insert(v int) {
	l.n++
	if l.n%2 == 0 {
		return
	}
	l.Target.Insert(v)
}

func TestRunDetectsDivergence(t *testing.T) {
	target := &lossyQueue{Target: QueueTarget(adapters.NewQueueFromStacks[int]())}
	_, err := Run("lossy", target, NewFIFOModel(), inserts(1, 2))
	require.ErrorIs(t, err, ErrDivergence)
	assert.Contains(t, err.Error(), "op 1")
}

func TestRunDetectsWrongDiscipline(t *testing.T) {
	ops := append(inserts(1, 2), Op{Kind: Remove})
	_, err := Run("mismatch", StackTarget(adapters.NewStackFromQueues[int]()), NewFIFOModel(), ops)
	require.ErrorIs(t, err, ErrDivergence)
	assert.False(t, errors.Is(err, adapters.ErrEmptyCollection))
}

func TestReportString(t *testing.T) {
	report, err := RunStack(inserts(1, 2))
	require.NoError(t, err)
	assert.Equal(t,
		"Adapter: stack\n"+
			"Operations: 2 (empty hits: 0)\n"+
			"Transfers: 1\n"+
			"Cost per op: mean 1.500, stddev 0.707, max 2\n"+
			"Final length: 2",
		report.String())
}
