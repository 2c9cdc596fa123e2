package adapters

import "dsa_exercises/src/collections"

// StackFromQueues is a LIFO stack over two FIFO queues.
//
// Push pays O(n) so that Pop and Top are O(1): the new element goes into the
// empty secondary queue, the whole primary queue is drained behind it and
// the two queues swap roles. primary front-to-back is always the stack
// top-to-bottom, and secondary is empty between calls.
type StackFromQueues[T any] struct {
	primary   *collections.Queue[T]
	secondary *collections.Queue[T]
	transfers int
}

var _ LIFO[int] = (*StackFromQueues[int])(nil)

func NewStackFromQueues[T any]() *StackFromQueues[T] {
	return &StackFromQueues[T]{
		primary:   collections.NewQueue[T](),
		secondary: collections.NewQueue[T](),
	}
}

func (s *StackFromQueues[T]) Push(value T) {
	s.secondary.Push(value)
	for {
		v, ok := s.primary.Pop()
		if !ok {
			break
		}
		s.secondary.Push(v)
		s.transfers++
	}
	s.primary, s.secondary = s.secondary, s.primary
}

// Pop removes and returns the most recently pushed element.
func (s *StackFromQueues[T]) Pop() (T, error) {
	v, ok := s.primary.Pop()
	if !ok {
		return v, ErrEmptyStack
	}
	return v, nil
}

// Top returns the most recently pushed element without removing it.
func (s *StackFromQueues[T]) Top() (T, error) {
	v, ok := s.primary.Peek()
	if !ok {
		return v, ErrEmptyStack
	}
	return v, nil
}

func (s *StackFromQueues[T]) IsEmpty() bool {
	return s.primary.IsEmpty()
}

func (s *StackFromQueues[T]) Len() int {
	return s.primary.Size()
}

// Transfers is the number of elements drained from primary into secondary
// across all pushes so far.
func (s *StackFromQueues[T]) Transfers() int {
	return s.transfers
}
