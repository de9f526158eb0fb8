package infrastructure

import (
	"context"
	"testing"

	"kiosqueLive/internal/modules/storefront/domain"
)

type stubHandler struct {
	topic   string
	handled []*domain.Message
}

func (s *stubHandler) Topic() string { return s.topic }

func (s *stubHandler) Handle(_ context.Context, msg *domain.Message) error {
	s.handled = append(s.handled, msg)
	return nil
}

func TestHandlerRegistryDispatch(t *testing.T) {
	registry := NewHandlerRegistry()
	catalog := &stubHandler{topic: "catalog.products"}
	registry.Register(catalog)

	msg := domain.NewMessage("catalog.products", "products", domain.ActionUpdated, nil)
	if err := registry.Dispatch(context.Background(), msg); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(catalog.handled) != 1 {
		t.Fatalf("expected 1 handled message, got %d", len(catalog.handled))
	}

	// Unknown topics are a silent no-op.
	other := domain.NewMessage("presence.location", "location", domain.ActionUpdated, nil)
	if err := registry.Dispatch(context.Background(), other); err != nil {
		t.Fatalf("expected unknown topic tolerated, got %v", err)
	}
	if len(catalog.handled) != 1 {
		t.Fatal("expected no extra dispatch")
	}
}
