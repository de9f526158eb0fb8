package domain

// HeaderScrollThreshold is the vertical page offset past which the header
// switches to its condensed "scrolled" presentation.
const HeaderScrollThreshold = 100

// HeaderState toggles the scrolled presentation from scroll reports.
type HeaderState struct {
	scrolled bool
}

func (h *HeaderState) Scrolled() bool { return h.scrolled }

// Update re-evaluates the threshold and reports whether the presentation
// changed with this report.
func (h *HeaderState) Update(offset float64) bool {
	next := offset > HeaderScrollThreshold
	if next == h.scrolled {
		return false
	}
	h.scrolled = next
	return true
}
