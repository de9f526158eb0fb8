package domain

import "strings"

// NavState tracks the mobile menu toggle and which page section currently
// owns the active nav link. At most one link is active at a time; the
// browser shim reports the section whose band contains the viewport
// midpoint.
type NavState struct {
	menuOpen bool
	active   string
}

func (n *NavState) MenuOpen() bool { return n.menuOpen }
func (n *NavState) Active() string { return n.active }

// ToggleMenu flips the mobile menu and returns the new open state.
func (n *NavState) ToggleMenu() bool {
	n.menuOpen = !n.menuOpen
	return n.menuOpen
}

// CloseMenu closes the mobile menu, reporting whether it was open.
func (n *NavState) CloseMenu() bool {
	was := n.menuOpen
	n.menuOpen = false
	return was
}

// Activate marks the given section's link active, unmarking all others.
// Reports whether the active link changed.
func (n *NavState) Activate(section string) bool {
	trimmed := strings.TrimSpace(section)
	if trimmed == n.active {
		return false
	}
	n.active = trimmed
	return true
}
