package search_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// validateCriteria проверяет согласованность критериев поиска
func validateCriteria(c domain.SearchCriteria) error {
	if c.MinPrice != nil && *c.MinPrice < 0 {
		return fmt.Errorf("%w: minPrice must be non-negative", ErrInvalidInput)
	}

	if c.MaxPrice != nil && *c.MaxPrice < 0 {
		return fmt.Errorf("%w: maxPrice must be non-negative", ErrInvalidInput)
	}

	if c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice {
		return fmt.Errorf("%w: minPrice must not exceed maxPrice", ErrInvalidInput)
	}

	if c.Guests != nil && *c.Guests < 1 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	return nil
}
