package domain

import "testing"

func TestDisplayPlaceFallback(t *testing.T) {
	cases := []struct {
		name     string
		location LocationInfo
		expected string
	}{
		{name: "place present", location: LocationInfo{Place: "Parc Central"}, expected: "Parc Central"},
		{name: "place absent", location: LocationInfo{}, expected: PlaceFallback},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.location.DisplayPlace(); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestNormalizeLocation(t *testing.T) {
	location := NormalizeLocation(map[string]any{
		"place":   "Parc Central",
		"hours":   "11h30 - 14h00",
		"message": "Pluie annoncée, repli sous le kiosque couvert.",
	})
	if location == nil {
		t.Fatal("expected location, got nil")
	}
	if location.Place != "Parc Central" || location.Hours != "11h30 - 14h00" {
		t.Fatalf("unexpected location: %+v", location)
	}
	if !location.HasMessage() {
		t.Fatal("expected daily message present")
	}
}

func TestNormalizeLocationUnwrapsDataEnvelope(t *testing.T) {
	location := NormalizeLocation(map[string]any{
		"data": map[string]any{"place": "Marché"},
	})
	if location == nil || location.Place != "Marché" {
		t.Fatalf("expected unwrapped location, got %+v", location)
	}
}

func TestNormalizeLocationRejectsNonMap(t *testing.T) {
	for _, payload := range []any{nil, "text", []any{1, 2}} {
		if got := NormalizeLocation(payload); got != nil {
			t.Fatalf("expected nil for %v, got %+v", payload, got)
		}
	}
}
