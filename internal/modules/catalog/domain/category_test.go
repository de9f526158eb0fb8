package domain

import "testing"

func TestCategoryLabel(t *testing.T) {
	cases := []struct {
		name        string
		key         string
		serverLabel string
		expected    string
	}{
		{name: "mapped sweet crepes", key: "crepes_sucrees", expected: "Crêpes sucrées"},
		{name: "mapped savory crepes", key: "crepes_salees", expected: "Crêpes salées"},
		{name: "mapped waffles", key: "gaufres", expected: "Gaufres"},
		{name: "mapped box", key: "box", expected: "Box"},
		{name: "mapped key wins over server label", key: "box", serverLabel: "Coffret", expected: "Box"},
		{name: "unmapped falls back to server label", key: "glaces", serverLabel: "Glaces", expected: "Glaces"},
		{name: "unmapped without server label keeps key", key: "glaces", expected: "glaces"},
		{name: "trims whitespace", key: "  gaufres  ", expected: "Gaufres"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CategoryLabel(tc.key, tc.serverLabel); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestFilterToken(t *testing.T) {
	cases := []struct {
		name     string
		key      string
		expected string
	}{
		{name: "sweet crepes", key: "crepes_sucrees", expected: "crepes-sucrees"},
		{name: "savory crepes", key: "crepes_salees", expected: "crepes-salees"},
		{name: "waffles", key: "gaufres", expected: "gaufres"},
		{name: "box", key: "box", expected: "box"},
		{name: "unmapped passthrough", key: "glaces", expected: "glaces"},
		{name: "trims whitespace", key: " box ", expected: "box"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FilterToken(tc.key); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestFilterTokensStartsWithCatchAll(t *testing.T) {
	tokens := FilterTokens()
	if len(tokens) == 0 || tokens[0] != FilterAll {
		t.Fatalf("expected catch-all first, got %v", tokens)
	}
}
