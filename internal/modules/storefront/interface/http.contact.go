package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	contact "kiosqueLive/internal/modules/contact/domain"
	"kiosqueLive/internal/modules/storefront/application/port"
	"kiosqueLive/internal/modules/storefront/application/usecase"
)

// NewContactHandler exposes POST /api/contact for clients without a
// socket. Submissions are relayed to the backend; its rejection status
// is passed through, everything else collapses to a generic 502.
func NewContactHandler(relay *usecase.ContactRelayUseCase) func(echo.Context) error {
	return func(c echo.Context) error {
		var submission contact.Submission
		if err := c.Bind(&submission); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}

		if err := relay.Execute(c.Request().Context(), submission); err != nil {
			var reqErr *port.RequestError
			if errors.As(err, &reqErr) {
				return echo.NewHTTPError(reqErr.Status, reqErr.Detail)
			}
			slog.Error("contact relay failed", slog.Any("error", err))
			return echo.NewHTTPError(http.StatusBadGateway, "unable to deliver message")
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// NewHealthHandler reports liveness plus the live session count.
func NewHealthHandler(sessions *usecase.SessionRegistry) func(echo.Context) error {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "ok",
			"sessions": sessions.Len(),
		})
	}
}
