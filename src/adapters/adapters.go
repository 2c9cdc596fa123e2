// Package adapters builds each ordering discipline out of the other one: a
// FIFO queue from two LIFO stacks and a LIFO stack from two FIFO queues.
//
// Both adapters report an empty collection through an error wrapping
// ErrEmptyCollection and the zero value of T. Neither is safe for concurrent
// use.
package adapters

// FIFO is the queue surface exposed by QueueFromStacks.
type FIFO[T any] interface {
	Enqueue(value T)
	Dequeue() (T, error)
	Front() (T, error)
	IsEmpty() bool
}

// LIFO is the stack surface exposed by StackFromQueues.
type LIFO[T any] interface {
	Push(value T)
	Pop() (T, error)
	Top() (T, error)
	IsEmpty() bool
}
