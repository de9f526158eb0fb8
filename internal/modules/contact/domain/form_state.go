package domain

import "time"

// StatusAutoHide is how long the success panel stays on screen before it
// dismisses itself.
const StatusAutoHide = 5000 * time.Millisecond

type FormPhase string

const (
	FormIdle       FormPhase = "idle"
	FormSubmitting FormPhase = "submitting"
	FormSuccess    FormPhase = "success"
	FormError      FormPhase = "error"
)

// FormState is the contact form's submission state machine. While
// submitting the submit control is disabled and shows its loading label;
// completion always returns the control to its interactive state.
type FormState struct {
	phase FormPhase
}

func NewFormState() *FormState {
	return &FormState{phase: FormIdle}
}

func (f *FormState) Phase() FormPhase { return f.phase }

// Begin enters the submitting phase. A submit while one is already in
// flight is refused.
func (f *FormState) Begin() bool {
	if f.phase == FormSubmitting {
		return false
	}
	f.phase = FormSubmitting
	return true
}

// Complete leaves the submitting phase based on the submission outcome.
func (f *FormState) Complete(err error) FormPhase {
	if err != nil {
		f.phase = FormError
	} else {
		f.phase = FormSuccess
	}
	return f.phase
}

// Dismiss hides the status panel, returning the form to idle. Reports
// whether a panel was actually showing.
func (f *FormState) Dismiss() bool {
	if f.phase != FormSuccess && f.phase != FormError {
		return false
	}
	f.phase = FormIdle
	return true
}

// SubmitEnabled reports whether the submit control is interactive.
func (f *FormState) SubmitEnabled() bool {
	return f.phase != FormSubmitting
}
