package usecase

import (
	"context"
	"errors"
	"log/slog"

	contact "kiosqueLive/internal/modules/contact/domain"
	"kiosqueLive/internal/modules/storefront/application/port"
	"kiosqueLive/internal/modules/storefront/domain"
)

// ContactRelayUseCase forwards contact submissions to the backend and, on
// success, notifies the admin stream. The backend's rejection detail is
// logged here; callers surface only a generic failure to the visitor.
type ContactRelayUseCase struct {
	sender      port.ContactSender
	broadcaster *BroadcastUseCase
}

func NewContactRelayUseCase(sender port.ContactSender, broadcaster *BroadcastUseCase) *ContactRelayUseCase {
	return &ContactRelayUseCase{sender: sender, broadcaster: broadcaster}
}

func (uc *ContactRelayUseCase) Execute(ctx context.Context, submission contact.Submission) error {
	err := uc.sender.Submit(ctx, submission)
	if err != nil {
		var reqErr *port.RequestError
		if errors.As(err, &reqErr) {
			slog.Warn("contact submission rejected", slog.Int("status", reqErr.Status), slog.String("detail", reqErr.Detail))
		} else {
			slog.Error("contact submission failed", slog.Any("error", err))
		}
		return err
	}

	slog.Info("contact submission delivered", slog.String("subject", submission.Subject))
	if uc.broadcaster != nil {
		notification := domain.NewMessage(domain.TopicContactReceived, "contact", domain.ActionCreated, map[string]any{
			"name":    submission.Name,
			"subject": submission.Subject,
		})
		uc.broadcaster.Execute(ctx, notification)
	}
	return nil
}
