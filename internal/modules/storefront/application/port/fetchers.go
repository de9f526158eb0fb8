package port

import (
	"context"

	catalog "kiosqueLive/internal/modules/catalog/domain"
	presence "kiosqueLive/internal/modules/presence/domain"
)

// CatalogFetcher reads the product catalog from the storefront backend.
// Reads fail soft: on any upstream failure implementations log and return
// an empty slice, so callers cannot distinguish "no products" from "fetch
// failed" and the page always renders something.
type CatalogFetcher interface {
	FetchProducts(ctx context.Context) []catalog.Product
	FetchBestsellers(ctx context.Context) []catalog.Product
}

// PresenceFetcher reads today's location, the weekly schedule, and the
// shell settings. Same degrade-to-empty contract as CatalogFetcher:
// location degrades to nil, schedule to empty, settings to the built-in
// defaults.
type PresenceFetcher interface {
	FetchTodayLocation(ctx context.Context) *presence.LocationInfo
	FetchSchedule(ctx context.Context) []presence.ScheduleEntry
	FetchSettings(ctx context.Context) presence.SiteSettings
}
