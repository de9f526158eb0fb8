package domain

import "time"

// Message is the unit exchanged with browser sessions and notification
// listeners: rendered fragments, UI state changes, and system acks all
// travel in this envelope.
type Message struct {
	Topic      string            `json:"topic"`
	Entity     string            `json:"entity,omitempty"`
	Action     string            `json:"action,omitempty"`
	ResourceID string            `json:"resourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// NewMessage stamps a message with the current UTC time.
func NewMessage(topic, entity, action string, data any) *Message {
	return &Message{
		Topic:     topic,
		Entity:    entity,
		Action:    action,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}
