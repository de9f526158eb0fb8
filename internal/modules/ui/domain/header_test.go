package domain

import "testing"

func TestHeaderStateThreshold(t *testing.T) {
	var header HeaderState

	if header.Update(50) {
		t.Fatal("expected no change below threshold")
	}
	if header.Scrolled() {
		t.Fatal("expected not scrolled")
	}

	if !header.Update(150) {
		t.Fatal("expected change crossing threshold")
	}
	if !header.Scrolled() {
		t.Fatal("expected scrolled")
	}

	if header.Update(400) {
		t.Fatal("expected no change while staying above threshold")
	}

	if !header.Update(HeaderScrollThreshold) {
		t.Fatal("expected change returning to exactly the threshold")
	}
	if header.Scrolled() {
		t.Fatal("expected compact style removed at the threshold")
	}
}
