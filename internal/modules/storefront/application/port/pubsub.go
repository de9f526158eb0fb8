package port

import (
	"context"

	"kiosqueLive/internal/modules/storefront/domain"
)

// Broadcaster fans a message out to every subscriber of its topic.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// TopicHandler consumes backend change events for a single broker topic.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, msg *domain.Message) error
}
