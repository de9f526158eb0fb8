package domain

import "testing"

func TestDayName(t *testing.T) {
	cases := []struct {
		index    int
		expected string
	}{
		{index: 0, expected: "Lundi"},
		{index: 4, expected: "Vendredi"},
		{index: 5, expected: "Samedi"},
		{index: 6, expected: "Dimanche"},
		{index: 7, expected: ""},
	}

	for _, tc := range cases {
		if got := DayName(tc.index); got != tc.expected {
			t.Fatalf("index %d: expected %q, got %q", tc.index, tc.expected, got)
		}
	}
}

func TestNormalizeScheduleEntry(t *testing.T) {
	cases := []struct {
		name     string
		raw      map[string]any
		expected ScheduleEntry
		ok       bool
	}{
		{
			name:     "explicit fields",
			raw:      map[string]any{"day": "Lundi", "day_index": float64(0), "place": "Parc Central", "hours": "11h30 - 14h00", "is_weekend": false},
			expected: ScheduleEntry{Day: "Lundi", DayIndex: 0, Place: "Parc Central", Hours: "11h30 - 14h00", Weekend: false},
			ok:       true,
		},
		{
			name:     "day falls back to index",
			raw:      map[string]any{"day_index": float64(2), "place": "Marché"},
			expected: ScheduleEntry{Day: "Mercredi", DayIndex: 2, Place: "Marché"},
			ok:       true,
		},
		{
			name:     "weekend inferred from index",
			raw:      map[string]any{"day_index": float64(6), "place": "Lac"},
			expected: ScheduleEntry{Day: "Dimanche", DayIndex: 6, Place: "Lac", Weekend: true},
			ok:       true,
		},
		{
			name:     "explicit weekend flag wins",
			raw:      map[string]any{"day": "Vendredi", "day_index": float64(4), "place": "Stade", "is_weekend": true},
			expected: ScheduleEntry{Day: "Vendredi", DayIndex: 4, Place: "Stade", Weekend: true},
			ok:       true,
		},
		{
			name: "empty row rejected",
			raw:  map[string]any{"day_index": float64(1)},
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry, ok := NormalizeScheduleEntry(tc.raw)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && entry != tc.expected {
				t.Fatalf("expected %+v, got %+v", tc.expected, entry)
			}
		})
	}
}

func TestBuildSchedulePreservesOrder(t *testing.T) {
	payload := []any{
		map[string]any{"day": "Samedi", "day_index": float64(5), "place": "Lac"},
		map[string]any{"day": "Lundi", "day_index": float64(0), "place": "Parc"},
	}

	entries := BuildSchedule(payload)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Day != "Samedi" || entries[1].Day != "Lundi" {
		t.Fatalf("expected received order kept, got %+v", entries)
	}
	if !entries[0].Weekend {
		t.Fatal("expected Samedi flagged as weekend")
	}
}

func TestBuildScheduleEmptyPayload(t *testing.T) {
	if got := BuildSchedule(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
