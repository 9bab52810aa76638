package get_invoice

import (
	"context"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/service/bookings/models"
)

type BookingService interface {
	GetInvoice(ctx context.Context, id int64, actor domain.Actor) (*models.InvoiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
