package cancel_booking

import (
	bookingModels "github.com/m04kA/SMC-HotelReservations/internal/service/bookings/models"
	transitionBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/transition_booking"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Booking   *bookingModels.BookingResponse `json:"booking"`
	Notified  bool                           `json:"notified"`
	Delivered bool                           `json:"delivered"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		Booking:   bookingModels.FromDomainBooking(resp.Booking),
		Notified:  resp.Notification != nil,
		Delivered: resp.Delivered,
	}
}
