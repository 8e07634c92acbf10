// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity, allocation-free circular buffers for hioload-ring.
// Queue[T] provides FIFO access with an overwrite-oldest ForcePush;
// Stack[T] provides LIFO access. Both are single-owner values with no
// internal synchronization: wrap every call in an external lock or
// confine each instance to one goroutine.
// See queue.go and stack.go for implementation details.
package ring
