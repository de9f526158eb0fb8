package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"kiosqueLive/internal/modules/storefront/domain"
)

// Command is one interaction event sent by the browser shim: a filter
// click, a search keystroke, a viewport report, a carousel control, a
// contact submission.
type Command struct {
	Action  string          `json:"action"`
	Topic   string          `json:"topic,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// PayloadMap decodes the payload into a generic map; a missing or
// malformed payload yields an empty map so handlers stay total.
func (c Command) PayloadMap() map[string]any {
	if len(c.Payload) == 0 {
		return map[string]any{}
	}
	var decoded map[string]any
	if err := json.Unmarshal(c.Payload, &decoded); err != nil {
		return map[string]any{}
	}
	return decoded
}

type CommandHandler func(ctx context.Context, client *Client, cmd Command)

// CommandProcessor dispatches socket commands: built-in subscribe/
// unsubscribe/ping plus a fallback that receives the storefront
// interaction events.
type CommandProcessor struct {
	hub             *Hub
	handlers        map[string]CommandHandler
	fallback        CommandHandler
	fallbackTimeout time.Duration
}

func NewCommandProcessor(hub *Hub, fallback CommandHandler) *CommandProcessor {
	processor := &CommandProcessor{
		hub:             hub,
		handlers:        make(map[string]CommandHandler),
		fallback:        fallback,
		fallbackTimeout: 10 * time.Second,
	}
	processor.Register("subscribe", processor.handleSubscribe)
	processor.Register("unsubscribe", processor.handleUnsubscribe)
	processor.Register("ping", processor.handlePing)
	return processor
}

func (p *CommandProcessor) Register(action string, handler CommandHandler) {
	if handler == nil {
		return
	}
	key := normalizeAction(action)
	if key == "" {
		return
	}
	p.handlers[key] = handler
}

func (p *CommandProcessor) Process(client *Client, cmd Command) {
	if client == nil {
		return
	}

	action := normalizeAction(cmd.Action)
	if action == "" {
		return
	}

	if handler, ok := p.handlers[action]; ok {
		handler(context.Background(), client, cmd)
		return
	}

	if p.fallback == nil {
		slog.Debug("ws command ignored", slog.String("sessionId", client.sessionID), slog.String("action", action))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.fallbackTimeout)
	defer cancel()
	p.fallback(ctx, client, cmd)
}

func (p *CommandProcessor) handleSubscribe(_ context.Context, client *Client, cmd Command) {
	topic := strings.TrimSpace(cmd.Topic)
	if topic == "" {
		return
	}
	p.hub.subscribe(client, topic)
	slog.Debug("ws subscribe", slog.String("sessionId", client.sessionID), slog.String("topic", topic))
}

func (p *CommandProcessor) handleUnsubscribe(_ context.Context, client *Client, cmd Command) {
	topic := strings.TrimSpace(cmd.Topic)
	if topic == "" {
		return
	}
	p.hub.unsubscribe(client, topic)
	slog.Debug("ws unsubscribe", slog.String("sessionId", client.sessionID), slog.String("topic", topic))
}

func (p *CommandProcessor) handlePing(_ context.Context, client *Client, _ Command) {
	client.SendDomainMessage(domain.NewMessage(domain.TopicSystemPong, domain.SystemEntity, domain.ActionPong, nil))
}

func normalizeAction(action string) string {
	return strings.ToLower(strings.TrimSpace(action))
}
