package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"kiosqueLive/internal/modules/storefront/domain"
)

// Hub routes broadcast messages to connected sockets: topic subscribers
// (admin notification streams) and global listeners. Per-session
// fragments bypass the hub and go straight to their client.
type Hub struct {
	topics  map[string]map[*Client]struct{}
	clients map[string]*Client
	global  map[*Client]struct{}
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		topics:  make(map[string]map[*Client]struct{}),
		clients: make(map[string]*Client),
		global:  make(map[*Client]struct{}),
	}
}

func (h *Hub) registerClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.clients[c.sessionID]; ok && existing != c {
		h.detachLocked(existing)
	}
	h.clients[c.sessionID] = c
	slog.Info("ws client registered", slog.String("sessionId", c.sessionID), slog.String("role", c.role))
}

func (h *Hub) subscribe(c *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*Client]struct{})
	}
	h.topics[topic][c] = struct{}{}
	c.subscribed[topic] = struct{}{}
}

func (h *Hub) unsubscribe(c *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.topics[topic]; ok {
		delete(subs, c)
		if len(subs) == 0 {
			delete(h.topics, topic)
		}
	}
	delete(c.subscribed, topic)
}

func (h *Hub) detachClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detachLocked(c)
}

func (h *Hub) detachLocked(c *Client) {
	if c == nil {
		return
	}
	for topic := range c.subscribed {
		if subs, ok := h.topics[topic]; ok {
			delete(subs, c)
			if len(subs) == 0 {
				delete(h.topics, topic)
			}
		}
	}
	delete(h.clients, c.sessionID)
	if c.receiveAll {
		delete(h.global, c)
	}
	c.close()
	slog.Info("ws client detached", slog.String("sessionId", c.sessionID), slog.String("role", c.role))
}

// Broadcast sends the message to every subscriber of its topic plus all
// global listeners.
func (h *Hub) Broadcast(_ context.Context, msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("broadcast marshal error", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	subscribers := h.topics[msg.Topic]
	clients := make([]*Client, 0, len(subscribers)+len(h.global))
	seen := make(map[*Client]struct{}, len(subscribers)+len(h.global))
	for c := range subscribers {
		clients = append(clients, c)
		seen[c] = struct{}{}
	}
	for c := range h.global {
		if _, ok := seen[c]; ok {
			continue
		}
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.trySend(data) {
			go h.detachClient(c)
		}
	}
}

// AttachClient registers the client and subscribes it to the given topics.
func (h *Hub) AttachClient(c *Client, topics []string) {
	h.registerClient(c)
	for _, topic := range topics {
		if trimmed := strings.TrimSpace(topic); trimmed != "" {
			h.subscribe(c, trimmed)
		}
	}
}

// AttachClientToAll registers the client as a global listener receiving
// every broadcasted message.
func (h *Hub) AttachClientToAll(c *Client) {
	c.receiveAll = true
	h.registerClient(c)
	h.mu.Lock()
	h.global[c] = struct{}{}
	h.mu.Unlock()
}
