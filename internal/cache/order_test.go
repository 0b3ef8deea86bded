package cache

import "testing"

func TestAccessOrder_EvictsOldestFirst(t *testing.T) {
	o := newAccessOrder()

	o.Touch("a")
	o.Touch("b")
	o.Touch("c")
	o.Touch("a") // a becomes most recent; b is now oldest

	victim, ok := o.EvictOldest()
	if !ok || victim != "b" {
		t.Fatalf("EvictOldest() = %q, %v; want %q, true", victim, ok, "b")
	}
	victim, ok = o.EvictOldest()
	if !ok || victim != "c" {
		t.Fatalf("EvictOldest() = %q, %v; want %q, true", victim, ok, "c")
	}
	victim, ok = o.EvictOldest()
	if !ok || victim != "a" {
		t.Fatalf("EvictOldest() = %q, %v; want %q, true", victim, ok, "a")
	}
	if _, ok := o.EvictOldest(); ok {
		t.Fatal("EvictOldest on an empty order should report false")
	}
}

func TestAccessOrder_RemoveMiddle(t *testing.T) {
	o := newAccessOrder()

	o.Touch("a")
	o.Touch("b")
	o.Touch("c")

	o.Remove("b")
	if o.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", o.Len())
	}

	victim, _ := o.EvictOldest()
	if victim != "a" {
		t.Errorf("EvictOldest() = %q, want %q", victim, "a")
	}

	// Removing an unknown key is a no-op.
	o.Remove("never-added")
	if o.Len() != 1 {
		t.Errorf("Len() = %d, want 1", o.Len())
	}
}

func TestAccessOrder_Clear(t *testing.T) {
	o := newAccessOrder()

	o.Touch("a")
	o.Touch("b")

	o.Clear()
	if o.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after Clear", o.Len())
	}
	if _, ok := o.EvictOldest(); ok {
		t.Fatal("cleared order should have nothing to evict")
	}

	// The order is reusable after Clear.
	o.Touch("c")
	if victim, ok := o.EvictOldest(); !ok || victim != "c" {
		t.Fatalf("EvictOldest() = %q, %v; want %q, true", victim, ok, "c")
	}
}
