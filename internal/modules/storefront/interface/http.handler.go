package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"kiosqueLive/internal/modules/storefront/application/usecase"
	"kiosqueLive/internal/modules/storefront/domain"
	"kiosqueLive/internal/modules/storefront/infrastructure"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var visitorCounter atomic.Uint64

// NewStorefrontWebsocketHandler exposes /ws/storefront. The storefront is
// public, so no token is required: each connection gets its own session
// holding its own view state. A client may pass ?session= to keep its id
// across reconnects; the hub detaches the previous socket for that id.
func NewStorefrontWebsocketHandler(
	hub *infrastructure.Hub,
	sessions *usecase.SessionRegistry,
	deps usecase.SessionDeps,
) func(echo.Context) error {
	return func(c echo.Context) error {
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		peerIP := c.RealIP()

		sessionID := strings.TrimSpace(c.QueryParam("session"))
		if sessionID == "" {
			sessionID = fmt.Sprintf("visitor-%d", visitorCounter.Add(1))
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("storefront ws upgrade failed", slog.String("ip", peerIP), slog.String("reqID", requestID), slog.Any("error", err))
			return err
		}

		var session *usecase.Session
		fallback := func(ctx context.Context, _ *infrastructure.Client, cmd infrastructure.Command) {
			session.HandleEvent(ctx, cmd.Action, cmd.PayloadMap())
		}

		client := infrastructure.NewClient(hub, conn, sessionID, "visitor", 16, fallback)
		session = usecase.NewSession(client, deps)

		sessions.Register(sessionID, session)
		client.AddCloseHook(func(*infrastructure.Client) {
			sessions.Unregister(sessionID, session)
		})

		hub.AttachClient(client, nil)

		go client.WritePump()
		go client.ReadPump()

		connected := domain.NewMessage(domain.TopicSystemConnected, domain.SystemEntity, domain.ActionConnected, map[string]any{
			"sessionId": sessionID,
		})
		connected.Metadata = map[string]string{"sessionId": sessionID}
		client.SendDomainMessage(connected)

		// Command handling is live from here on; the initial fragments
		// stream in as the bootstrap fetches complete.
		go session.Bootstrap(context.Background())

		slog.Info("storefront ws connected", slog.String("sessionId", sessionID), slog.String("ip", peerIP), slog.String("reqID", requestID))
		return nil
	}
}
