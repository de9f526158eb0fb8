package domain

import "strings"

// ViewState holds the menu's session-local filter and search selection.
// It is owned by the storefront session and passed explicitly into every
// render, so the menu always reflects the AND of both predicates applied
// to the last successfully fetched product list.
type ViewState struct {
	Filter string
	Search string
}

// NewViewState returns the default state: every category, no search text.
func NewViewState() ViewState {
	return ViewState{Filter: FilterAll, Search: ""}
}

// WithFilter returns a copy with the filter token replaced. Blank tokens
// reset to the catch-all filter.
func (s ViewState) WithFilter(token string) ViewState {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		trimmed = FilterAll
	}
	s.Filter = trimmed
	return s
}

// WithSearch returns a copy with the search text replaced. The raw value
// is kept as typed, padding included; matching lowercases only.
func (s ViewState) WithSearch(query string) ViewState {
	s.Search = query
	return s
}

// Matches reports whether the product is visible under the current state.
// The search is a case-insensitive substring test against the raw query,
// so whitespace padding must appear in the name too.
func (s ViewState) Matches(p Product) bool {
	if s.Filter != FilterAll && FilterToken(p.Category) != s.Filter {
		return false
	}
	query := strings.ToLower(s.Search)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query)
}

// VisibleProducts filters the full list preserving the original order.
func (s ViewState) VisibleProducts(products []Product) []Product {
	visible := make([]Product, 0, len(products))
	for _, p := range products {
		if s.Matches(p) {
			visible = append(visible, p)
		}
	}
	return visible
}
