// File: ring/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stack fixes the LIFO discipline over the shared ring core. There is
// no force variant: overwrite-oldest has no meaning for a stack.

package ring

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/ringcore"
)

// Ensure compile-time interface compliance.
var _ api.Stack[any] = (*Stack[any])(nil)

// Stack is a fixed-capacity LIFO buffer over the same storage layout
// as Queue, with the stack-top index advancing linearly instead of
// wrapping. Same element and ownership contract as Queue.
type Stack[T any] struct {
	core *ringcore.Core[T]
}

// NewStack allocates a stack with the given capacity.
// Panics if capacity < 1.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{core: ringcore.New[T](capacity)}
}

// Push appends item; returns api.ErrFull when at capacity.
func (s *Stack[T]) Push(item T) error {
	if !s.core.LIFOPush(item) {
		return api.ErrFull
	}
	return nil
}

// Pop removes and returns the most recent item; api.ErrEmpty when none.
func (s *Stack[T]) Pop() (T, error) {
	item, ok := s.core.LIFOPop()
	if !ok {
		return item, api.ErrEmpty
	}
	return item, nil
}

// Peek returns the most recent item without removing it; api.ErrEmpty
// when none. Repeated calls return the same item until a Pop or Push.
func (s *Stack[T]) Peek() (T, error) {
	item, ok := s.core.LIFOPeek()
	if !ok {
		return item, api.ErrEmpty
	}
	return item, nil
}

// Cap returns fixed buffer capacity.
func (s *Stack[T]) Cap() int { return s.core.Cap() }

// Len returns current number of items.
func (s *Stack[T]) Len() int { return s.core.Len() }

// Remaining returns number of free slots.
func (s *Stack[T]) Remaining() int { return s.core.Remaining() }

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return s.core.Empty() }

// Full reports whether the stack is at capacity.
func (s *Stack[T]) Full() bool { return s.core.Full() }

// Flush resets the stack to empty without zeroing storage.
func (s *Stack[T]) Flush() { s.core.Flush() }
