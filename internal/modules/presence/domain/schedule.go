package domain

import (
	"kiosqueLive/internal/shared/normalization"
)

// ScheduleEntry is one row of the weekly schedule, pre-sorted by the
// backend. The gateway never reorders entries.
type ScheduleEntry struct {
	Day      string
	DayIndex int
	Place    string
	Hours    string
	Weekend  bool
}

var dayNames = map[int]string{
	0: "Lundi",
	1: "Mardi",
	2: "Mercredi",
	3: "Jeudi",
	4: "Vendredi",
	5: "Samedi",
	6: "Dimanche",
}

// DayName resolves the French day label for a 0-based day index.
func DayName(index int) string {
	return dayNames[index]
}

// NormalizeScheduleEntry attempts to construct an entry from a map payload.
func NormalizeScheduleEntry(raw map[string]any) (ScheduleEntry, bool) {
	place := normalization.AsString(raw["place"])
	day := normalization.AsString(raw["day"])
	index := normalization.AsInt(raw["day_index"])
	if place == "" && day == "" {
		return ScheduleEntry{}, false
	}
	if day == "" {
		day = DayName(index)
	}
	entry := ScheduleEntry{
		Day:      day,
		DayIndex: index,
		Place:    place,
		Hours:    normalization.AsString(raw["hours"]),
	}
	if _, present := raw["is_weekend"]; present {
		entry.Weekend = normalization.AsBool(raw["is_weekend"])
	} else {
		entry.Weekend = index >= 5
	}
	return entry, true
}

// BuildSchedule projects a decoded payload into the ordered entry slice,
// keeping the order received.
func BuildSchedule(payload any) []ScheduleEntry {
	rawItems := normalization.AsInterfaceSlice(payload)
	if len(rawItems) == 0 {
		if container := normalization.MapFromPayload(payload); container != nil {
			rawItems = normalization.AsInterfaceSlice(container["items"])
		}
	}
	if len(rawItems) == 0 {
		return nil
	}

	entries := make([]ScheduleEntry, 0, len(rawItems))
	for _, item := range rawItems {
		if rawMap, ok := item.(map[string]any); ok {
			if entry, ok := NormalizeScheduleEntry(rawMap); ok {
				entries = append(entries, entry)
			}
		}
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}
