package handler

import (
	"context"
	"log/slog"

	"kiosqueLive/internal/modules/storefront/application/port"
	"kiosqueLive/internal/modules/storefront/application/usecase"
	"kiosqueLive/internal/modules/storefront/domain"
)

// LocationEventHandler refreshes the today-location summary on every
// live session when the broker announces a presence change.
type LocationEventHandler struct {
	topic    string
	fetcher  port.PresenceFetcher
	sessions *usecase.SessionRegistry
}

func NewLocationEventHandler(topic string, fetcher port.PresenceFetcher, sessions *usecase.SessionRegistry) *LocationEventHandler {
	return &LocationEventHandler{topic: topic, fetcher: fetcher, sessions: sessions}
}

func (h *LocationEventHandler) Topic() string { return h.topic }

func (h *LocationEventHandler) Handle(ctx context.Context, msg *domain.Message) error {
	if h.sessions.Len() == 0 {
		return nil
	}

	location := h.fetcher.FetchTodayLocation(ctx)
	slog.Info("location refreshed", slog.String("topic", msg.Topic), slog.String("action", msg.Action))

	h.sessions.Each(func(session *usecase.Session) {
		session.ApplyLocation(location)
	})
	return nil
}

// ScheduleEventHandler refreshes the weekly schedule on every live
// session when the broker announces a schedule change.
type ScheduleEventHandler struct {
	topic    string
	fetcher  port.PresenceFetcher
	sessions *usecase.SessionRegistry
}

func NewScheduleEventHandler(topic string, fetcher port.PresenceFetcher, sessions *usecase.SessionRegistry) *ScheduleEventHandler {
	return &ScheduleEventHandler{topic: topic, fetcher: fetcher, sessions: sessions}
}

func (h *ScheduleEventHandler) Topic() string { return h.topic }

func (h *ScheduleEventHandler) Handle(ctx context.Context, msg *domain.Message) error {
	if h.sessions.Len() == 0 {
		return nil
	}

	schedule := h.fetcher.FetchSchedule(ctx)
	slog.Info("schedule refreshed", slog.String("topic", msg.Topic), slog.String("action", msg.Action), slog.Int("entries", len(schedule)))

	h.sessions.Each(func(session *usecase.Session) {
		session.ApplySchedule(schedule)
	})
	return nil
}

var (
	_ port.TopicHandler = (*LocationEventHandler)(nil)
	_ port.TopicHandler = (*ScheduleEventHandler)(nil)
)
