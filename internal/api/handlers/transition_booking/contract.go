package transition_booking

import (
	"context"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	transitionBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/transition_booking"
)

type TransitionBookingUseCase interface {
	Execute(ctx context.Context, actor domain.Actor, req *transitionBooking.Request) (*transitionBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
