package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	transitionBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/transition_booking"
)

type CancelBookingUseCase interface {
	CancelByGuest(ctx context.Context, actor domain.Actor, bookingID int64) (*transitionBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
