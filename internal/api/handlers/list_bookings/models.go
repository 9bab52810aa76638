package list_bookings

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-HotelReservations/internal/service/bookings/models"
)

var errInvalidPaging = errors.New("limit and offset must be non-negative integers")

// ToServiceRequest собирает фильтр из query параметров
// Query params: status, from_date, to_date, limit, offset
func ToServiceRequest(q url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if v := q.Get("status"); v != "" {
		req.Status = &v
	}
	if v := q.Get("from_date"); v != "" {
		req.FromDate = &v
	}
	if v := q.Get("to_date"); v != "" {
		req.ToDate = &v
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, errInvalidPaging
		}
		req.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, errInvalidPaging
		}
		req.Offset = offset
	}

	return req, nil
}
