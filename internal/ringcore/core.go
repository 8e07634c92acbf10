// File: internal/ringcore/core.go
// Package ringcore implements the shared ring buffer state machine.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core holds one contiguous storage slice plus head/tail/count and
// implements both index disciplines over it: FIFO ops treat head and
// tail as ring indices with wraparound modulo capacity; LIFO ops treat
// head as a linear stack-top offset in [0, capacity]. The two
// conventions are incompatible on a live buffer, so each public
// wrapper (ring.Queue, ring.Stack) uses exactly one family.

package ringcore

// Core is a fixed-capacity circular buffer over value-type slots.
// Slots outside the occupied range keep stale values and are never
// read through the operation set. Not safe for concurrent use.
type Core[T any] struct {
	storage  []T
	capacity int
	head     int
	tail     int
	count    int
}

// New allocates a core with the given capacity.
func New[T any](capacity int) *Core[T] {
	if capacity < 1 {
		panic("ringcore: capacity must be positive")
	}
	return &Core[T]{
		storage:  make([]T, capacity),
		capacity: capacity,
	}
}

// Cap returns fixed buffer capacity.
func (c *Core[T]) Cap() int { return c.capacity }

// Len returns number of occupied slots.
func (c *Core[T]) Len() int { return c.count }

// Remaining returns number of free slots.
func (c *Core[T]) Remaining() int { return c.capacity - c.count }

// Empty reports count == 0.
func (c *Core[T]) Empty() bool { return c.count == 0 }

// Full reports count == capacity.
func (c *Core[T]) Full() bool { return c.count == c.capacity }

// Flush resets head, tail and count. Slot contents are left in place;
// subsequent reads only ever go through occupied indices, so stale
// data is never exposed. Idempotent.
func (c *Core[T]) Flush() {
	c.head = 0
	c.tail = 0
	c.count = 0
}

// FIFOPush writes at tail and advances it with wraparound.
// Returns false when the buffer is full.
func (c *Core[T]) FIFOPush(item T) bool {
	if c.Full() {
		return false
	}
	c.storage[c.tail] = item
	c.tail = (c.tail + 1) % c.capacity
	c.count++
	return true
}

// FIFOForcePush always writes at tail. When the buffer is full the
// oldest slot is retired by advancing head along with tail, so the
// overwritten item vanishes and count stays at capacity.
func (c *Core[T]) FIFOForcePush(item T) {
	c.storage[c.tail] = item
	c.tail = (c.tail + 1) % c.capacity
	if c.Full() {
		c.head = (c.head + 1) % c.capacity
	} else {
		c.count++
	}
}

// FIFOPop removes and returns the item at head.
// Returns false when the buffer is empty.
func (c *Core[T]) FIFOPop() (T, bool) {
	var zero T
	if c.Empty() {
		return zero, false
	}
	item := c.storage[c.head]
	c.head = (c.head + 1) % c.capacity
	c.count--
	return item, true
}

// FIFOPeek returns the item at head without mutating any index.
func (c *Core[T]) FIFOPeek() (T, bool) {
	var zero T
	if c.Empty() {
		return zero, false
	}
	return c.storage[c.head], true
}

// LIFOPush writes at head and advances it linearly, no wraparound.
// The count guard keeps head within [0, capacity].
func (c *Core[T]) LIFOPush(item T) bool {
	if c.Full() {
		return false
	}
	c.storage[c.head] = item
	c.head++
	c.count++
	return true
}

// LIFOPop retreats head and returns the item it now indexes.
func (c *Core[T]) LIFOPop() (T, bool) {
	var zero T
	if c.Empty() {
		return zero, false
	}
	c.head--
	c.count--
	return c.storage[c.head], true
}

// LIFOPeek returns the item below head without mutation.
func (c *Core[T]) LIFOPeek() (T, bool) {
	var zero T
	if c.Empty() {
		return zero, false
	}
	return c.storage[c.head-1], true
}
