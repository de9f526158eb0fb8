package infrastructure

import (
	"encoding/json"
	"testing"
)

func TestCommandPayloadMap(t *testing.T) {
	cases := []struct {
		name     string
		payload  string
		expected map[string]any
	}{
		{name: "object", payload: `{"filter":"gaufres"}`, expected: map[string]any{"filter": "gaufres"}},
		{name: "empty", payload: "", expected: map[string]any{}},
		{name: "malformed", payload: `{"filter":`, expected: map[string]any{}},
		{name: "non object", payload: `[1,2]`, expected: map[string]any{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := Command{Action: "menu.filter", Payload: json.RawMessage(tc.payload)}
			got := cmd.PayloadMap()
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
			for key, value := range tc.expected {
				if got[key] != value {
					t.Fatalf("expected %v for %q, got %v", value, key, got[key])
				}
			}
		})
	}
}

func TestNormalizeAction(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{input: " Menu.Filter ", expected: "menu.filter"},
		{input: "PING", expected: "ping"},
		{input: "   ", expected: ""},
	}

	for _, tc := range cases {
		if got := normalizeAction(tc.input); got != tc.expected {
			t.Fatalf("input %q: expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}
