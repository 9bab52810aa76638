package domain

import (
	"strings"
	"time"
)

// Room represents a bookable room in the catalog
type Room struct {
	ID          int64
	Title       string
	Description string
	NightlyRate float64
	// Free-text tags ("Wi-Fi", "Sea View"); no controlled vocabulary
	Features    []string
	IsAvailable bool
	ImageURL    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Capacity returns the estimated number of guests the room takes
func (r *Room) Capacity() int {
	return RoomCapacity(r.Title)
}

// HasFeature reports whether any tag fuzzily matches the wanted feature
func (r *Room) HasFeature(wanted string) bool {
	for _, tag := range r.Features {
		if FuzzyMatch(tag, wanted) {
			return true
		}
	}
	return false
}

// RoomCapacity estimates capacity from the room title:
// "suite" -> 4, "deluxe" -> 3, anything else -> 2.
// Replace with an explicit capacity column when the catalog gets one.
func RoomCapacity(title string) int {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "suite"):
		return 4
	case strings.Contains(t, "deluxe"):
		return 3
	default:
		return 2
	}
}

// FuzzyMatch reports whether either string contains the other, ignoring case.
// An empty string never matches.
func FuzzyMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
