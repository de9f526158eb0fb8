package port

import (
	"context"
	"fmt"

	contact "kiosqueLive/internal/modules/contact/domain"
)

// RequestError is a contact submission the backend rejected; Detail holds
// the human-readable reason from the error payload. It is logged, never
// shown to the visitor.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("contact request rejected (%d): %s", e.Status, e.Detail)
}

// ContactSender delivers a submission to the backend. Unlike the read
// fetchers, failures here surface to the caller: the write is the one
// action with user-visible consequence if silently dropped.
type ContactSender interface {
	Submit(ctx context.Context, submission contact.Submission) error
}
