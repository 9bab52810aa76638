package search_rooms

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	roomModels "github.com/m04kA/SMC-HotelReservations/internal/service/rooms/models"
	searchRooms "github.com/m04kA/SMC-HotelReservations/internal/usecase/search_rooms"
	"github.com/m04kA/SMC-HotelReservations/internal/validation"
)

const (
	msgExpectedNumber  = "ожидается число"
	msgExpectedInteger = "ожидается целое число"
	msgExpectedBool    = "ожидается true или false"
)

// SearchRoomsResponse HTTP response model
type SearchRoomsResponse struct {
	Rooms           []roomModels.RoomResponse `json:"rooms"`
	Total           int                       `json:"total"`
	CriteriaApplied bool                      `json:"criteria_applied"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchRooms.Response) *SearchRoomsResponse {
	list := roomModels.FromDomainRoomList(resp.Rooms)

	return &SearchRoomsResponse{
		Rooms:           list.Rooms,
		Total:           list.Total,
		CriteriaApplied: resp.CriteriaApplied,
	}
}

// ToSearchCriteria собирает критерии поиска из query параметров
// Query params: q, min_price, max_price, guests, facility (повторяемый), view, only_available
func ToSearchCriteria(q url.Values) (domain.SearchCriteria, error) {
	criteria := domain.SearchCriteria{
		Query:      strings.TrimSpace(q.Get("q")),
		Facilities: q["facility"],
	}

	var errs validation.Errors

	if v := q.Get("min_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "min_price", Message: msgExpectedNumber})
		} else {
			criteria.MinPrice = &price
		}
	}

	if v := q.Get("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "max_price", Message: msgExpectedNumber})
		} else {
			criteria.MaxPrice = &price
		}
	}

	if v := q.Get("guests"); v != "" {
		guests, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "guests", Message: msgExpectedInteger})
		} else {
			criteria.Guests = &guests
		}
	}

	if v := strings.TrimSpace(q.Get("view")); v != "" {
		criteria.ViewType = &v
	}

	if v := q.Get("only_available"); v != "" {
		onlyAvailable, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "only_available", Message: msgExpectedBool})
		} else {
			criteria.OnlyAvailable = onlyAvailable
		}
	}

	if len(errs) > 0 {
		return criteria, errs
	}
	return criteria, nil
}
