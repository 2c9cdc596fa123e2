// Package workload replays operation traces against the adapters and
// measures how many element transfers each operation costs.
package workload

import (
	"errors"
	"fmt"
	"math/rand"

	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

type Kind int

const (
	Insert Kind = iota
	Remove
	Peek
)

var kindNames = [...]string{
	Insert: "insert",
	Remove: "remove",
	Peek:   "peek",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Op is one step of a trace. Value is only meaningful for Insert.
type Op struct {
	Kind  Kind
	Value int
}

func (op Op) String() string {
	if op.Kind == Insert {
		return fmt.Sprintf("%v %d", op.Kind, op.Value)
	}
	return op.Kind.String()
}

// Rates are the mean arrivals per time unit of each operation stream.
type Rates struct {
	Insert float64
	Remove float64
	Peek   float64
}

var ErrBadRates = errors.New("rates must be non-negative with at least one positive")

func (r Rates) perKind() []float64 {
	return []float64{Insert: r.Insert, Remove: r.Remove, Peek: r.Peek}
}

// Generate draws n operations from three independent Poisson streams, one per
// Kind, and interleaves them by arrival time. Inserted values count up
// from 1.
func Generate(rng *rand.Rand, n int, rates Rates) ([]Op, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative number of operations: %d", n)
	}
	perKind := rates.perKind()

	pq := priorityqueue.New[int, float64](priorityqueue.MinHeap)
	for k, rate := range perKind {
		if rate < 0 {
			return nil, ErrBadRates
		}
		if rate > 0 {
			pq.Put(k, rng.ExpFloat64()/rate)
		}
	}
	if pq.Len() == 0 {
		return nil, ErrBadRates
	}

	ops := make([]Op, 0, n)
	nextValue := 1
	for iter := 0; iter < n; iter++ {
		item := pq.Get()
		op := Op{Kind: Kind(item.Value)}
		if op.Kind == Insert {
			op.Value = nextValue
			nextValue++
		}
		ops = append(ops, op)
		pq.Put(item.Value, item.Priority+rng.ExpFloat64()/perKind[item.Value])
	}
	return ops, nil
}
