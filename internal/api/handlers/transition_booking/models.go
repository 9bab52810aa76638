package transition_booking

import (
	bookingModels "github.com/m04kA/SMC-HotelReservations/internal/service/bookings/models"
	transitionBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/transition_booking"
)

// TransitionBookingRequest HTTP request model
type TransitionBookingRequest struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *TransitionBookingRequest) ToUseCaseRequest(bookingID int64) *transitionBooking.Request {
	return &transitionBooking.Request{
		BookingID:  bookingID,
		Status:     r.Status,
		AdminNotes: r.AdminNotes,
	}
}

// NotificationResponse сведения об уведомлении гостю
type NotificationResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Delivered bool   `json:"delivered"`
}

// TransitionBookingResponse HTTP response model
type TransitionBookingResponse struct {
	Booking      *bookingModels.BookingResponse `json:"booking"`
	Notification *NotificationResponse          `json:"notification,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionBooking.Response) *TransitionBookingResponse {
	out := &TransitionBookingResponse{
		Booking: bookingModels.FromDomainBooking(resp.Booking),
	}

	if resp.Notification != nil {
		out.Notification = &NotificationResponse{
			ID:        resp.Notification.ID,
			Status:    string(resp.Notification.Status),
			Delivered: resp.Delivered,
		}
	}

	return out
}
