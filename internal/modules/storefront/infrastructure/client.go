package infrastructure

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"kiosqueLive/internal/modules/storefront/domain"
)

// Client is one connected socket: a visitor's storefront session or an
// admin notification listener.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	done       chan struct{}
	sessionID  string
	role       string
	commands   *CommandProcessor
	subscribed map[string]struct{}
	closeOnce  sync.Once
	receiveAll bool
	closeHooks []func(*Client)
	hookMu     sync.Mutex
}

func NewClient(hub *Hub, conn *websocket.Conn, sessionID, role string, buf int, fallback CommandHandler) *Client {
	client := &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, buf),
		done:       make(chan struct{}),
		sessionID:  sessionID,
		role:       role,
		subscribed: make(map[string]struct{}),
	}
	client.commands = NewCommandProcessor(hub, fallback)
	return client
}

func (c *Client) SessionID() string { return c.sessionID }

// close signals shutdown via the done channel. The send channel is never
// closed: session goroutines (bootstrap, status auto-hide, carousel
// settle timers) outlive the connection and must be able to send into a
// detached client without panicking; their messages are simply dropped.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
		c.invokeCloseHooks()
	})
}

// trySend queues raw bytes for the write pump. Detached clients swallow
// the message; a full buffer on a live client reports false.
func (c *Client) trySend(data []byte) bool {
	select {
	case <-c.done:
		return true
	default:
	}
	select {
	case c.send <- data:
		return true
	case <-c.done:
		return true
	default:
		return false
	}
}

// AddCloseHook registers a callback executed once when the client closes.
func (c *Client) AddCloseHook(fn func(*Client)) {
	if fn == nil {
		return
	}
	c.hookMu.Lock()
	c.closeHooks = append(c.closeHooks, fn)
	c.hookMu.Unlock()
}

func (c *Client) invokeCloseHooks() {
	c.hookMu.Lock()
	hooks := append([]func(*Client){}, c.closeHooks...)
	c.closeHooks = nil
	c.hookMu.Unlock()

	for _, hook := range hooks {
		func(h func(*Client)) {
			defer func() {
				if r := recover(); r != nil {
					slog.Warn("ws close hook panic", slog.Any("error", r))
				}
			}()
			h(c)
		}(hook)
	}
}

// SendDomainMessage delivers a message to this socket only. A full buffer
// detaches the client rather than blocking the sender.
func (c *Client) SendDomainMessage(msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("websocket marshal error", slog.Any("error", err))
		return
	}
	if !c.trySend(data) {
		slog.Warn("websocket send buffer full", slog.String("sessionId", c.sessionID))
		go c.hub.detachClient(c)
	}
}

func (c *Client) WritePump() {
	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case msg := <-c.send:
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("websocket write error", slog.Any("error", err))
				return
			}
		case <-c.done:
			return
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				slog.Warn("websocket ping error", slog.Any("error", err))
				return
			}
		}
	}
}

func (c *Client) ReadPump() {
	c.conn.SetReadLimit(1 << 16)
	_ = c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})
	defer c.hub.detachClient(c)
	for {
		var cmd Command
		_ = c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read error", slog.String("sessionId", c.sessionID), slog.Any("error", err))
			}
			return
		}
		if c.commands != nil {
			c.commands.Process(c, cmd)
		}
	}
}
