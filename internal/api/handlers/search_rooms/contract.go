package search_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	searchRooms "github.com/m04kA/SMC-HotelReservations/internal/usecase/search_rooms"
)

type SearchRoomsUseCase interface {
	Execute(ctx context.Context, criteria domain.SearchCriteria) (*searchRooms.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
