package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	catalog "kiosqueLive/internal/modules/catalog/domain"
	contact "kiosqueLive/internal/modules/contact/domain"
	presence "kiosqueLive/internal/modules/presence/domain"
	"kiosqueLive/internal/modules/storefront/application/port"
	"kiosqueLive/internal/shared/normalization"
)

const (
	productsPath    = "/api/products"
	bestsellersPath = "/api/products/best-sellers"
	locationPath    = "/api/location/today"
	schedulePath    = "/api/schedule"
	settingsPath    = "/api/settings"
	contactPath     = "/api/contact"
)

// StorefrontHTTPClient implements the catalog, presence, and contact
// ports against the backend's public REST API. Every read degrades to an
// empty result on failure; only the contact write surfaces errors.
type StorefrontHTTPClient struct {
	rest    *RESTClient
	timeout time.Duration
}

func NewStorefrontHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *StorefrontHTTPClient {
	return &StorefrontHTTPClient{rest: NewRESTClient(baseURL, timeout, client), timeout: timeoutOrDefault(timeout)}
}

func (c *StorefrontHTTPClient) FetchProducts(ctx context.Context) []catalog.Product {
	payload, err := c.getJSON(ctx, productsPath)
	if err != nil {
		slog.Error("products fetch failed", slog.String("path", productsPath), slog.Any("error", err))
		return nil
	}
	return catalog.BuildProductList(payload)
}

func (c *StorefrontHTTPClient) FetchBestsellers(ctx context.Context) []catalog.Product {
	payload, err := c.getJSON(ctx, bestsellersPath)
	if err != nil {
		slog.Error("bestsellers fetch failed", slog.String("path", bestsellersPath), slog.Any("error", err))
		return nil
	}
	return catalog.BuildProductList(payload)
}

func (c *StorefrontHTTPClient) FetchTodayLocation(ctx context.Context) *presence.LocationInfo {
	payload, err := c.getJSON(ctx, locationPath)
	if err != nil {
		slog.Error("location fetch failed", slog.String("path", locationPath), slog.Any("error", err))
		return nil
	}
	return presence.NormalizeLocation(payload)
}

func (c *StorefrontHTTPClient) FetchSchedule(ctx context.Context) []presence.ScheduleEntry {
	payload, err := c.getJSON(ctx, schedulePath)
	if err != nil {
		slog.Error("schedule fetch failed", slog.String("path", schedulePath), slog.Any("error", err))
		return nil
	}
	return presence.BuildSchedule(payload)
}

func (c *StorefrontHTTPClient) FetchSettings(ctx context.Context) presence.SiteSettings {
	payload, err := c.getJSON(ctx, settingsPath)
	if err != nil {
		slog.Error("settings fetch failed", slog.String("path", settingsPath), slog.Any("error", err))
		return presence.DefaultSettings()
	}
	return presence.NormalizeSettings(payload)
}

// Submit posts the contact submission. Non-2xx responses are turned into
// a RequestError carrying the backend's detail string; transport failures
// come back wrapped and generic.
func (c *StorefrontHTTPClient) Submit(ctx context.Context, submission contact.Submission) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	body, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("encode contact submission: %w", err)
	}

	req, err := c.rest.NewRequest(ctx, http.MethodPost, contactPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.rest.Do(req)
	if err != nil {
		return fmt.Errorf("contact request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}
	return &port.RequestError{Status: res.StatusCode, Detail: decodeErrorDetail(res.Body)}
}

func (c *StorefrontHTTPClient) getJSON(ctx context.Context, path string) (any, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.rest.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.rest.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return nil, fmt.Errorf("unexpected response %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

func (c *StorefrontHTTPClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func decodeErrorDetail(body io.Reader) string {
	var payload any
	if err := json.NewDecoder(io.LimitReader(body, 2048)).Decode(&payload); err != nil {
		return ""
	}
	container := normalization.MapFromPayload(payload)
	if container == nil {
		return ""
	}
	return normalization.AsString(container["detail"])
}

var (
	_ port.CatalogFetcher  = (*StorefrontHTTPClient)(nil)
	_ port.PresenceFetcher = (*StorefrontHTTPClient)(nil)
	_ port.ContactSender   = (*StorefrontHTTPClient)(nil)
)
