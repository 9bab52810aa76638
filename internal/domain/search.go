package domain

import "strings"

// SearchCriteria guest-supplied room search parameters. Lives for one request.
type SearchCriteria struct {
	Query      string
	MinPrice   *float64 // nil = no lower bound
	MaxPrice   *float64 // nil = no upper bound
	Guests     *int
	Facilities []string
	ViewType   *string
	// OnlyAvailable skips rooms flagged unavailable
	OnlyAvailable bool
}

// IsEmpty returns true if no criterion would narrow the catalog
func (c SearchCriteria) IsEmpty() bool {
	if strings.TrimSpace(c.Query) != "" || c.MinPrice != nil || c.MaxPrice != nil || c.Guests != nil {
		return false
	}
	if c.ViewType != nil && strings.TrimSpace(*c.ViewType) != "" {
		return false
	}
	for _, f := range c.Facilities {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return !c.OnlyAvailable
}
