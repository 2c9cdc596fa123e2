package adapters

import "dsa_exercises/src/collections"

// QueueFromStacks is a FIFO queue over two LIFO stacks.
//
// incoming holds the newest elements in reverse enqueue order; outgoing holds
// the oldest ones with the next element to leave on top. Elements move from
// incoming to outgoing only when outgoing is empty, so each element is moved
// at most once and every operation is amortized O(1).
type QueueFromStacks[T any] struct {
	incoming  *collections.Stack[T]
	outgoing  *collections.Stack[T]
	transfers int
}

var _ FIFO[int] = (*QueueFromStacks[int])(nil)

func NewQueueFromStacks[T any]() *QueueFromStacks[T] {
	return &QueueFromStacks[T]{
		incoming: collections.NewStack[T](),
		outgoing: collections.NewStack[T](),
	}
}

func (q *QueueFromStacks[T]) Enqueue(value T) {
	q.incoming.Push(value)
}

// refill moves every element of incoming onto outgoing, but only when
// outgoing is empty. Otherwise the current front would be buried.
func (q *QueueFromStacks[T]) refill() {
	if q.outgoing.Size() > 0 {
		return
	}
	for {
		v, ok := q.incoming.Pop()
		if !ok {
			return
		}
		q.outgoing.Push(v)
		q.transfers++
	}
}

// Front returns the oldest element without removing it.
func (q *QueueFromStacks[T]) Front() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}
	q.refill()
	v, _ := q.outgoing.Peek()
	return v, nil
}

// Dequeue removes and returns the oldest element.
func (q *QueueFromStacks[T]) Dequeue() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}
	q.refill()
	v, _ := q.outgoing.Pop()
	return v, nil
}

func (q *QueueFromStacks[T]) IsEmpty() bool {
	return q.incoming.IsEmpty() && q.outgoing.IsEmpty()
}

func (q *QueueFromStacks[T]) Len() int {
	return q.incoming.Size() + q.outgoing.Size()
}

// Transfers is the number of elements moved from incoming to outgoing so far.
func (q *QueueFromStacks[T]) Transfers() int {
	return q.transfers
}
