package adapters

import (
	"errors"
	"fmt"
)

// ErrEmptyCollection is reported when an operation needs an element and the
// adapter holds none. The adapter is left untouched.
var ErrEmptyCollection = errors.New("empty collection")

var (
	ErrEmptyQueue = fmt.Errorf("queue: %w", ErrEmptyCollection)
	ErrEmptyStack = fmt.Errorf("stack: %w", ErrEmptyCollection)
)
