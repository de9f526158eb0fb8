package domain

import (
	"kiosqueLive/internal/shared/normalization"
)

// SiteSettings carries the storefront shell content (name, slogan,
// standing hours, social links).
type SiteSettings struct {
	SiteName     string
	Slogan       string
	HoursWeekday string
	HoursEvening string
	HoursWeekend string
	InstagramURL string
	TikTokURL    string
}

// DefaultSettings returns the built-in shell content used when the
// backend is unreachable or a field is absent.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		SiteName:     "KIOSQUE DU PARC",
		Slogan:       "Du sucré, du salé, fait minute.",
		HoursWeekday: "11h30 - 14h00",
		HoursEvening: "18h00 - 21h00",
		HoursWeekend: "09h00 - 15h00",
		InstagramURL: "https://instagram.com",
		TikTokURL:    "https://tiktok.com",
	}
}

// NormalizeSettings overlays a decoded payload onto the defaults so the
// shell always renders something.
func NormalizeSettings(payload any) SiteSettings {
	settings := DefaultSettings()
	container := normalization.MapFromPayload(payload)
	if container == nil {
		return settings
	}
	if v := normalization.AsString(container["site_name"]); v != "" {
		settings.SiteName = v
	}
	if v := normalization.AsString(container["slogan"]); v != "" {
		settings.Slogan = v
	}
	if v := normalization.AsString(container["hours_weekday"]); v != "" {
		settings.HoursWeekday = v
	}
	if v := normalization.AsString(container["hours_evening"]); v != "" {
		settings.HoursEvening = v
	}
	if v := normalization.AsString(container["hours_weekend"]); v != "" {
		settings.HoursWeekend = v
	}
	if v := normalization.AsString(container["instagram_url"]); v != "" {
		settings.InstagramURL = v
	}
	if v := normalization.AsString(container["tiktok_url"]); v != "" {
		settings.TikTokURL = v
	}
	return settings
}
