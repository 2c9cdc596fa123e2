package collections

type linkedListNode[T any] struct {
	value T
	next  *linkedListNode[T]
}

type linkedList[T any] struct {
	head *linkedListNode[T]
	tail *linkedListNode[T]
	size int
}

// Deque is the minimal container surface shared by Stack and Queue.
// Pop and Peek report false when the container is empty.
type Deque[T any] interface {
	Push(e T)
	Pop() (T, bool)
	Peek() (T, bool)
	Size() int
}

// Stack is a LIFO container: Push and Pop both work on the head.
type Stack[T any] struct {
	list *linkedList[T]
}

// Queue is a FIFO container: Push appends at the tail, Pop takes the head.
type Queue[T any] struct {
	list *linkedList[T]
}

func (l *linkedList[T]) popHead() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	node := l.head
	l.head = l.head.next
	l.size--
	if l.size == 0 {
		l.tail = nil
	}
	return node.value, true
}

func (l *linkedList[T]) peekHead() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		list: &linkedList[T]{},
	}
}

func (s *Stack[T]) Push(e T) {
	newNode := &linkedListNode[T]{value: e}
	if s.list.size == 0 {
		s.list.head = newNode
		s.list.tail = newNode
	} else {
		newNode.next = s.list.head
		s.list.head = newNode
	}
	s.list.size++
}

func (s *Stack[T]) Pop() (T, bool) {
	return s.list.popHead()
}

// Peek returns the most recently pushed element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	return s.list.peekHead()
}

func (s *Stack[T]) Size() int {
	return s.list.size
}

func (s *Stack[T]) IsEmpty() bool {
	return s.list.size == 0
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		list: &linkedList[T]{},
	}
}

func (q *Queue[T]) Push(e T) {
	newNode := &linkedListNode[T]{value: e}
	if q.list.size == 0 {
		q.list.head = newNode
		q.list.tail = newNode
	} else {
		q.list.tail.next = newNode
		q.list.tail = newNode
	}
	q.list.size++
}

func (q *Queue[T]) Pop() (T, bool) {
	return q.list.popHead()
}

// Peek returns the oldest element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	return q.list.peekHead()
}

func (q *Queue[T]) Size() int {
	return q.list.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.list.size == 0
}
