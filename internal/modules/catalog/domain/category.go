package domain

import "strings"

// FilterAll is the filter token matching every category.
const FilterAll = "all"

// Tag values carried by catalog products.
const (
	TagSweet  = "sweet"
	TagSavory = "savory"
)

// categoryLabels maps backend category keys to display labels.
var categoryLabels = map[string]string{
	"crepes_sucrees": "Crêpes sucrées",
	"crepes_salees":  "Crêpes salées",
	"gaufres":        "Gaufres",
	"box":            "Box",
}

// categoryFilters maps backend category keys to the filter tokens carried
// by the storefront's filter buttons.
var categoryFilters = map[string]string{
	"crepes_sucrees": "crepes-sucrees",
	"crepes_salees":  "crepes-salees",
	"gaufres":        "gaufres",
	"box":            "box",
}

// CategoryLabel resolves the display label for a backend category key.
// The mapping is total: unmapped keys fall back to the server-provided
// label, then to the raw key, never to an empty string.
func CategoryLabel(key, serverLabel string) string {
	trimmed := strings.TrimSpace(key)
	if label, ok := categoryLabels[trimmed]; ok {
		return label
	}
	if fallback := strings.TrimSpace(serverLabel); fallback != "" {
		return fallback
	}
	return trimmed
}

// FilterToken resolves the filter-category token for a backend category
// key, falling back to the raw key for unmapped categories.
func FilterToken(key string) string {
	trimmed := strings.TrimSpace(key)
	if token, ok := categoryFilters[trimmed]; ok {
		return token
	}
	return trimmed
}

// FilterTokens lists the known filter tokens in display order, starting
// with the catch-all token.
func FilterTokens() []string {
	return []string{FilterAll, "crepes-sucrees", "crepes-salees", "gaufres", "box"}
}
