package domain

// RevealThreshold is the minimum visible fraction that triggers the
// scroll-in transition. The browser shim evaluates visibility with a
// 50px bottom margin before reporting the ratio.
const RevealThreshold = 0.10

// RevealBottomMargin is the viewport bottom margin, in pixels, the shim
// applies when measuring visibility.
const RevealBottomMargin = 50

type RevealPhase string

const (
	RevealPending RevealPhase = "pending"
	RevealVisible RevealPhase = "visible"
)

// RevealState is the one-shot pending -> visible transition behind
// scroll-in animations. Once visible it never reverses.
type RevealState struct {
	phase RevealPhase
}

func NewRevealState() *RevealState {
	return &RevealState{phase: RevealPending}
}

func (s *RevealState) Phase() RevealPhase { return s.phase }

// Observe feeds a visibility report into the state machine and reports
// whether this report caused the pending -> visible transition. Further
// reports, including the element leaving and re-entering the viewport,
// never re-trigger it.
func (s *RevealState) Observe(visibleFraction float64) bool {
	if s.phase == RevealVisible {
		return false
	}
	if visibleFraction < RevealThreshold {
		return false
	}
	s.phase = RevealVisible
	return true
}

// RevealSet tracks reveal states for a set of animatable elements keyed
// by their element id.
type RevealSet struct {
	states map[string]*RevealState
}

func NewRevealSet() *RevealSet {
	return &RevealSet{states: make(map[string]*RevealState)}
}

// Arm registers an element for observation. Re-arming an element that
// already transitioned is a no-op, so refreshed fragments only animate
// their genuinely new elements.
func (r *RevealSet) Arm(id string) {
	if id == "" {
		return
	}
	if _, ok := r.states[id]; ok {
		return
	}
	r.states[id] = NewRevealState()
}

// Observe routes a visibility report to the element's state machine.
// Unknown elements are silent no-ops.
func (r *RevealSet) Observe(id string, visibleFraction float64) bool {
	state, ok := r.states[id]
	if !ok {
		return false
	}
	return state.Observe(visibleFraction)
}

// Pending lists the element ids still awaiting their transition.
func (r *RevealSet) Pending() []string {
	pending := make([]string, 0, len(r.states))
	for id, state := range r.states {
		if state.Phase() == RevealPending {
			pending = append(pending, id)
		}
	}
	return pending
}
