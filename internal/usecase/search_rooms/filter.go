package search_rooms

import (
	"strings"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// Filter отбирает номера каталога, подходящие под все заданные критерии.
// Порядок каталога сохраняется; при отсутствии совпадений возвращается пустой (не nil) срез.
func Filter(rooms []*domain.Room, criteria domain.SearchCriteria) []*domain.Room {
	result := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if matches(room, criteria) {
			result = append(result, room)
		}
	}
	return result
}

func matches(room *domain.Room, c domain.SearchCriteria) bool {
	if room == nil {
		return false
	}

	if c.OnlyAvailable && !room.IsAvailable {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		if !strings.Contains(strings.ToLower(room.Title), q) &&
			!strings.Contains(strings.ToLower(room.Description), q) {
			return false
		}
	}

	// Границы цены включительные
	if c.MinPrice != nil && room.NightlyRate < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && room.NightlyRate > *c.MaxPrice {
		return false
	}

	// Каждое удобство должно найти хотя бы один подходящий тег
	for _, facility := range c.Facilities {
		if strings.TrimSpace(facility) == "" {
			continue
		}
		if !room.HasFeature(facility) {
			return false
		}
	}

	if c.ViewType != nil && strings.TrimSpace(*c.ViewType) != "" {
		if !room.HasFeature(*c.ViewType) {
			return false
		}
	}

	if c.Guests != nil && *c.Guests > room.Capacity() {
		return false
	}

	return true
}
