package domain

import (
	"sort"
	"testing"
)

func TestRevealStateOneShot(t *testing.T) {
	state := NewRevealState()

	if state.Observe(0.05) {
		t.Fatal("expected below-threshold report ignored")
	}
	if state.Phase() != RevealPending {
		t.Fatalf("expected pending, got %q", state.Phase())
	}

	if !state.Observe(0.10) {
		t.Fatal("expected transition exactly at threshold")
	}
	if state.Phase() != RevealVisible {
		t.Fatalf("expected visible, got %q", state.Phase())
	}

	// Leaving and re-entering the viewport never re-triggers.
	if state.Observe(0) {
		t.Fatal("expected no transition after leaving viewport")
	}
	if state.Observe(0.9) {
		t.Fatal("expected no second transition")
	}
}

func TestRevealSetArmIsIdempotent(t *testing.T) {
	set := NewRevealSet()
	set.Arm("product-1")
	if !set.Observe("product-1", 0.5) {
		t.Fatal("expected first transition")
	}

	// Re-arming after a fragment refresh must not reset visible elements.
	set.Arm("product-1")
	if set.Observe("product-1", 0.5) {
		t.Fatal("expected re-armed element to stay visible")
	}
}

func TestRevealSetUnknownAndBlankIDs(t *testing.T) {
	set := NewRevealSet()
	set.Arm("")
	if set.Observe("ghost", 1.0) {
		t.Fatal("expected unknown id ignored")
	}
	if pending := set.Pending(); len(pending) != 0 {
		t.Fatalf("expected nothing pending, got %v", pending)
	}
}

func TestRevealSetPending(t *testing.T) {
	set := NewRevealSet()
	set.Arm("product-1")
	set.Arm("product-2")
	set.Observe("product-1", 0.5)

	pending := set.Pending()
	sort.Strings(pending)
	if len(pending) != 1 || pending[0] != "product-2" {
		t.Fatalf("expected only product-2 pending, got %v", pending)
	}
}
