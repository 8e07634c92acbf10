// File: ring/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Queue fixes the FIFO discipline over the shared ring core. Mixing
// FIFO and LIFO index conventions on one buffer is undefined, so the
// discipline is chosen at construction by picking Queue or Stack.

package ring

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/ringcore"
)

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*Queue[any])(nil)

// Queue is a fixed-capacity FIFO ring buffer. Elements must be plain
// value types: slots are never zeroed, so a value stays in storage
// until physically overwritten, even after Pop or Flush.
// Not thread-safe; the caller owns synchronization.
type Queue[T any] struct {
	core *ringcore.Core[T]
}

// NewQueue allocates a queue with the given capacity.
// Panics if capacity < 1.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{core: ringcore.New[T](capacity)}
}

// Push appends item; returns api.ErrFull when at capacity.
func (q *Queue[T]) Push(item T) error {
	if !q.core.FIFOPush(item) {
		return api.ErrFull
	}
	return nil
}

// ForcePush appends item, silently retiring the oldest unread item
// when the buffer is full. Never fails.
func (q *Queue[T]) ForcePush(item T) {
	q.core.FIFOForcePush(item)
}

// Pop removes and returns the oldest item; api.ErrEmpty when none.
func (q *Queue[T]) Pop() (T, error) {
	item, ok := q.core.FIFOPop()
	if !ok {
		return item, api.ErrEmpty
	}
	return item, nil
}

// Peek returns the oldest item without removing it; api.ErrEmpty when
// none. Repeated calls return the same item until a Pop or Push.
func (q *Queue[T]) Peek() (T, error) {
	item, ok := q.core.FIFOPeek()
	if !ok {
		return item, api.ErrEmpty
	}
	return item, nil
}

// Cap returns fixed buffer capacity.
func (q *Queue[T]) Cap() int { return q.core.Cap() }

// Len returns current number of items.
func (q *Queue[T]) Len() int { return q.core.Len() }

// Remaining returns number of free slots.
func (q *Queue[T]) Remaining() int { return q.core.Remaining() }

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.core.Empty() }

// Full reports whether the queue is at capacity.
func (q *Queue[T]) Full() bool { return q.core.Full() }

// Flush resets the queue to empty without zeroing storage.
func (q *Queue[T]) Flush() { q.core.Flush() }
