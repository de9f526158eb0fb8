package domain

import "testing"

func TestNavToggleAndClose(t *testing.T) {
	var nav NavState

	if !nav.ToggleMenu() {
		t.Fatal("expected menu open after first toggle")
	}
	if nav.ToggleMenu() {
		t.Fatal("expected menu closed after second toggle")
	}

	nav.ToggleMenu()
	if !nav.CloseMenu() {
		t.Fatal("expected close to report the menu was open")
	}
	if nav.CloseMenu() {
		t.Fatal("expected close of closed menu to report false")
	}
}

func TestNavSingleActiveLink(t *testing.T) {
	var nav NavState

	if !nav.Activate("menu") {
		t.Fatal("expected first activation to report a change")
	}
	if nav.Active() != "menu" {
		t.Fatalf("expected menu active, got %q", nav.Active())
	}

	if nav.Activate("menu") {
		t.Fatal("expected same section to report no change")
	}

	if !nav.Activate("contact") {
		t.Fatal("expected switching section to report a change")
	}
	if nav.Active() != "contact" {
		t.Fatalf("expected contact active, got %q", nav.Active())
	}

	// Clearing happens when no section band contains the viewport midpoint.
	if !nav.Activate("") {
		t.Fatal("expected clearing to report a change")
	}
	if nav.Active() != "" {
		t.Fatalf("expected no active link, got %q", nav.Active())
	}
}
