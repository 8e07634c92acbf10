// Package api
// Author: momentics <momentics@gmail.com>
//
// Contracts for fixed-capacity circular buffers in FIFO and LIFO disciplines.

package api

// Buffer is the discipline-independent part of a ring buffer contract.
// All queries are pure reads; Flush is a logical reset.
type Buffer interface {
	// Cap returns fixed buffer capacity.
	Cap() int
	// Len returns current number of items.
	Len() int
	// Remaining returns number of free slots.
	Remaining() int
	// Empty reports whether the buffer holds no items.
	Empty() bool
	// Full reports whether the buffer is at capacity.
	Full() bool
	// Flush resets the buffer to empty. Slot contents are not zeroed.
	Flush()
}

// Queue is a bounded FIFO ring buffer contract.
type Queue[T any] interface {
	Buffer
	// Push appends an item; returns ErrFull when at capacity.
	Push(item T) error
	// ForcePush appends an item, overwriting the oldest unread item
	// when full. Never fails.
	ForcePush(item T)
	// Pop removes and returns the oldest item; ErrEmpty when none.
	Pop() (T, error)
	// Peek returns the oldest item without removing it; ErrEmpty when none.
	Peek() (T, error)
}

// Stack is a bounded LIFO ring buffer contract. No force variant:
// overwrite-oldest has no meaning for a stack discipline.
type Stack[T any] interface {
	Buffer
	// Push appends an item; returns ErrFull when at capacity.
	Push(item T) error
	// Pop removes and returns the most recent item; ErrEmpty when none.
	Pop() (T, error)
	// Peek returns the most recent item without removing it; ErrEmpty when none.
	Peek() (T, error)
}
