// File: internal/ringcore/core_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringcore

import "testing"

func TestCore_FIFOForcePushFullAdvancesHead(t *testing.T) {
	c := New[int](3)
	for i := 1; i <= 3; i++ {
		if !c.FIFOPush(i) {
			t.Fatalf("push %d failed on non-full buffer", i)
		}
	}

	c.FIFOForcePush(4)
	if c.Len() != 3 {
		t.Errorf("count after force push: got %d, want 3", c.Len())
	}
	// Oldest element retired, the rest shift up.
	for _, want := range []int{2, 3, 4} {
		got, ok := c.FIFOPop()
		if !ok || got != want {
			t.Errorf("pop: got (%d, %v), want (%d, true)", got, ok, want)
		}
	}
}

func TestCore_LIFOHeadIsLinear(t *testing.T) {
	c := New[int](3)
	for i := 1; i <= 3; i++ {
		if !c.LIFOPush(i) {
			t.Fatalf("lifo push %d failed", i)
		}
	}
	// head sits at capacity, one past the last slot; peek reads below it.
	if got, ok := c.LIFOPeek(); !ok || got != 3 {
		t.Errorf("peek at full: got (%d, %v), want (3, true)", got, ok)
	}
	if c.LIFOPush(9) {
		t.Error("push succeeded on full stack")
	}
	for _, want := range []int{3, 2, 1} {
		got, ok := c.LIFOPop()
		if !ok || got != want {
			t.Errorf("lifo pop: got (%d, %v), want (%d, true)", got, ok, want)
		}
	}
	if _, ok := c.LIFOPop(); ok {
		t.Error("pop succeeded on empty stack")
	}
}

func TestCore_FlushKeepsSlotContents(t *testing.T) {
	c := New[int](2)
	c.FIFOPush(7)
	c.FIFOPush(8)
	c.Flush()

	if c.Len() != 0 || c.Remaining() != 2 {
		t.Errorf("after flush: len=%d remaining=%d", c.Len(), c.Remaining())
	}
	// Storage is not zeroed; only the indices reset. The stale values
	// must never surface through the operation set.
	if c.storage[0] != 7 || c.storage[1] != 8 {
		t.Errorf("flush zeroed storage: %v", c.storage)
	}
	if _, ok := c.FIFOPeek(); ok {
		t.Error("peek exposed stale slot after flush")
	}
}

func TestCore_FlushRestartsAtFront(t *testing.T) {
	c := New[int](3)
	c.FIFOPush(1)
	c.FIFOPush(2)
	c.FIFOPop()
	c.Flush()

	// Next push writes slot 0, same as a fresh core.
	c.FIFOPush(42)
	if c.storage[0] != 42 {
		t.Errorf("post-flush push landed at wrong slot: %v", c.storage)
	}
}

func TestCore_QueriesTrackCount(t *testing.T) {
	c := New[byte](4)
	if !c.Empty() || c.Full() || c.Cap() != 4 || c.Remaining() != 4 {
		t.Fatalf("fresh core queries wrong: len=%d cap=%d", c.Len(), c.Cap())
	}
	for i := 0; i < 4; i++ {
		c.FIFOPush(byte(i))
	}
	if !c.Full() || c.Remaining() != 0 || c.Len() != 4 {
		t.Errorf("full core queries wrong: len=%d remaining=%d", c.Len(), c.Remaining())
	}
	if c.FIFOPush(9) {
		t.Error("push succeeded on full core")
	}
}

func TestCore_CapacityOne(t *testing.T) {
	c := New[int](1)
	if !c.FIFOPush(1) {
		t.Fatal("push into capacity-1 core failed")
	}
	c.FIFOForcePush(2)
	if got, ok := c.FIFOPop(); !ok || got != 2 {
		t.Errorf("got (%d, %v), want (2, true)", got, ok)
	}
}

func TestNew_PanicsOnBadCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(0) did not panic")
		}
	}()
	New[int](0)
}
