package workload

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"dsa_exercises/src/adapters"
)

// ErrDivergence is reported when an adapter answers differently from the
// reference model for the same trace.
var ErrDivergence = errors.New("adapter diverged from reference model")

// Target is an adapter seen through the workload operations. Remove and
// Peek report an error wrapping adapters.ErrEmptyCollection when empty.
type Target interface {
	Insert(v int)
	Remove() (int, error)
	Peek() (int, error)
	Len() int
	Transfers() int
}

type queueTarget struct{ q *adapters.QueueFromStacks[int] }

func (t queueTarget) Insert(v int)         { t.q.Enqueue(v) }
func (t queueTarget) Remove() (int, error) { return t.q.Dequeue() }
func (t queueTarget) Peek() (int, error)   { return t.q.Front() }
func (t queueTarget) Len() int             { return t.q.Len() }
func (t queueTarget) Transfers() int       { return t.q.Transfers() }

type stackTarget struct{ s *adapters.StackFromQueues[int] }

func (t stackTarget) Insert(v int)         { t.s.Push(v) }
func (t stackTarget) Remove() (int, error) { return t.s.Pop() }
func (t stackTarget) Peek() (int, error)   { return t.s.Top() }
func (t stackTarget) Len() int             { return t.s.Len() }
func (t stackTarget) Transfers() int       { return t.s.Transfers() }

func QueueTarget(q *adapters.QueueFromStacks[int]) Target { return queueTarget{q} }
func StackTarget(s *adapters.StackFromQueues[int]) Target { return stackTarget{s} }

// Model is a plain slice with the expected ordering discipline.
type Model struct {
	lifo  bool
	items []int
}

func NewFIFOModel() *Model { return &Model{} }
func NewLIFOModel() *Model { return &Model{lifo: true} }

func (m *Model) Insert(v int) { m.items = append(m.items, v) }

func (m *Model) Peek() (int, bool) {
	if len(m.items) == 0 {
		return 0, false
	}
	if m.lifo {
		return m.items[len(m.items)-1], true
	}
	return m.items[0], true
}

func (m *Model) Remove() (int, bool) {
	v, ok := m.Peek()
	if !ok {
		return 0, false
	}
	if m.lifo {
		m.items = m.items[:len(m.items)-1]
	} else {
		m.items = m.items[1:]
	}
	return v, true
}

func (m *Model) Len() int { return len(m.items) }

// Report summarizes the cost of a replayed trace. The cost of one operation
// is 1 plus the number of elements it moved between the backing stores.
type Report struct {
	Name      string
	Ops       int
	EmptyHits int
	Transfers int
	FinalLen  int
	Costs     []float64
	Mean      float64
	StdDev    float64
	Max       float64
}

func (r *Report) summarize() {
	r.Ops = len(r.Costs)
	switch len(r.Costs) {
	case 0:
		return
	case 1:
		r.Mean = r.Costs[0]
	default:
		r.Mean, r.StdDev = stat.MeanStdDev(r.Costs, nil)
	}
	r.Max = floats.Max(r.Costs)
}

func (r *Report) String() string {
	s := new(strings.Builder)
	fmt.Fprintf(s, "Adapter: %s\n", r.Name)
	fmt.Fprintf(s, "Operations: %d (empty hits: %d)\n", r.Ops, r.EmptyHits)
	fmt.Fprintf(s, "Transfers: %d\n", r.Transfers)
	fmt.Fprintf(s, "Cost per op: mean %.3f, stddev %.3f, max %.0f\n", r.Mean, r.StdDev, r.Max)
	fmt.Fprintf(s, "Final length: %d", r.FinalLen)
	return s.String()
}

func diverged(i int, op Op, format string, args ...any) error {
	return fmt.Errorf("%w: op %d (%v): %s", ErrDivergence, i, op, fmt.Sprintf(format, args...))
}

func check(i int, op Op, got int, err error, want int, ok bool) error {
	switch {
	case !ok && !errors.Is(err, adapters.ErrEmptyCollection):
		return diverged(i, op, "got %d (err %v), want empty", got, err)
	case ok && err != nil:
		return diverged(i, op, "got error %v, want %d", err, want)
	case ok && got != want:
		return diverged(i, op, "got %d, want %d", got, want)
	}
	return nil
}

// Run replays ops on target and model side by side and stops at the first
// answer where they disagree.
func Run(name string, target Target, model *Model, ops []Op) (*Report, error) {
	report := &Report{
		Name:  name,
		Costs: make([]float64, 0, len(ops)),
	}

	for i, op := range ops {
		before := target.Transfers()

		var err error
		switch op.Kind {
		case Insert:
			target.Insert(op.Value)
			model.Insert(op.Value)
		case Remove:
			got, gotErr := target.Remove()
			want, ok := model.Remove()
			if !ok {
				report.EmptyHits++
			}
			err = check(i, op, got, gotErr, want, ok)
		case Peek:
			got, gotErr := target.Peek()
			want, ok := model.Peek()
			if !ok {
				report.EmptyHits++
			}
			err = check(i, op, got, gotErr, want, ok)
		default:
			err = fmt.Errorf("op %d: unknown kind %v", i, op.Kind)
		}
		if err != nil {
			return nil, err
		}

		if target.Len() != model.Len() {
			return nil, diverged(i, op, "length %d, want %d", target.Len(), model.Len())
		}
		report.Costs = append(report.Costs, float64(1+target.Transfers()-before))
	}

	report.Transfers = target.Transfers()
	report.FinalLen = target.Len()
	report.summarize()
	return report, nil
}

// RunQueue replays ops on a fresh QueueFromStacks.
func RunQueue(ops []Op) (*Report, error) {
	return Run("queue", QueueTarget(adapters.NewQueueFromStacks[int]()), NewFIFOModel(), ops)
}

// RunStack replays ops on a fresh StackFromQueues.
func RunStack(ops []Op) (*Report, error) {
	return Run("stack", StackTarget(adapters.NewStackFromQueues[int]()), NewLIFOModel(), ops)
}
