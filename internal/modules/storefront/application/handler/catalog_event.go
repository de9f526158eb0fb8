package handler

import (
	"context"
	"log/slog"

	"kiosqueLive/internal/modules/storefront/application/port"
	"kiosqueLive/internal/modules/storefront/application/usecase"
	"kiosqueLive/internal/modules/storefront/domain"
)

// CatalogEventHandler reacts to catalog change events from the broker:
// it refetches the product dataset once and applies it to every live
// session, each of which re-renders under its own view state.
type CatalogEventHandler struct {
	topic    string
	fetcher  port.CatalogFetcher
	sessions *usecase.SessionRegistry
}

func NewCatalogEventHandler(topic string, fetcher port.CatalogFetcher, sessions *usecase.SessionRegistry) *CatalogEventHandler {
	return &CatalogEventHandler{topic: topic, fetcher: fetcher, sessions: sessions}
}

func (h *CatalogEventHandler) Topic() string { return h.topic }

func (h *CatalogEventHandler) Handle(ctx context.Context, msg *domain.Message) error {
	if h.sessions.Len() == 0 {
		return nil
	}

	products := h.fetcher.FetchProducts(ctx)
	bestsellers := h.fetcher.FetchBestsellers(ctx)

	slog.Info("catalog refreshed",
		slog.String("topic", msg.Topic),
		slog.String("action", msg.Action),
		slog.Int("products", len(products)),
		slog.Int("bestsellers", len(bestsellers)),
	)

	h.sessions.Each(func(session *usecase.Session) {
		session.ApplyCatalog(products, bestsellers)
	})
	return nil
}

var _ port.TopicHandler = (*CatalogEventHandler)(nil)
