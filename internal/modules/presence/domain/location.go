package domain

import (
	"kiosqueLive/internal/shared/normalization"
)

// PlaceFallback is shown when the backend has no location configured.
const PlaceFallback = "Non defini"

// LocationInfo describes where the kiosk stands today. Replaced wholesale
// on each fetch; absent fields fall back to placeholder text.
type LocationInfo struct {
	Place   string
	Hours   string
	Message string
}

// DisplayPlace returns the place or the literal fallback when absent.
func (l LocationInfo) DisplayPlace() string {
	if l.Place == "" {
		return PlaceFallback
	}
	return l.Place
}

// HasMessage reports whether the optional daily message is present.
func (l LocationInfo) HasMessage() bool {
	return l.Message != ""
}

// NormalizeLocation constructs a LocationInfo from a decoded payload.
// Returns nil when the payload has no usable shape.
func NormalizeLocation(payload any) *LocationInfo {
	container := normalization.MapFromPayload(payload)
	if container == nil {
		return nil
	}
	return &LocationInfo{
		Place:   normalization.AsString(container["place"]),
		Hours:   normalization.AsString(container["hours"]),
		Message: normalization.AsString(container["message"]),
	}
}
