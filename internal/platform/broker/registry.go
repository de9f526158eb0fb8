package broker

import (
	"context"

	"kiosqueLive/internal/modules/storefront/domain"
	"kiosqueLive/internal/modules/storefront/infrastructure"
)

// StartKafkaConsumers runs one consumer goroutine per configured topic,
// dispatching every decoded event through the handler registry. With no
// brokers configured the gateway still serves sessions; it just never
// sees change events.
func StartKafkaConsumers(
	ctx context.Context,
	registry *infrastructure.HandlerRegistry,
	brokers []string,
	groupID string,
	topics []string,
) {
	if len(brokers) == 0 {
		return
	}
	for _, topic := range topics {
		go func(tp string) {
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			defer consumer.Close()
			_ = consumer.Consume(ctx, func(msg *domain.Message) error {
				return registry.Dispatch(ctx, msg)
			})
		}(topic)
	}
}
