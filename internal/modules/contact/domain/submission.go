package domain

import (
	"kiosqueLive/internal/shared/normalization"
)

// Submission is a contact form message, constructed only at submit time
// and never persisted by the gateway.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NormalizeSubmission builds a Submission from a command payload map.
// A blank phone stays absent; all other fields are trimmed as received,
// field-level validation is owed by the backend.
func NormalizeSubmission(raw map[string]any) Submission {
	return Submission{
		Name:    normalization.AsString(raw["name"]),
		Email:   normalization.AsString(raw["email"]),
		Phone:   normalization.AsString(raw["phone"]),
		Subject: normalization.AsString(raw["subject"]),
		Message: normalization.AsString(raw["message"]),
	}
}
