package create_booking

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	bookingModels "github.com/m04kA/SMC-HotelReservations/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelReservations/internal/validation"
)

const msgInvalidDate = "ожидается дата YYYY-MM-DD"

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      string  `json:"guest_phone"`
	CheckIn         string  `json:"check_in"`  // YYYY-MM-DD
	CheckOut        string  `json:"check_out"` // YYYY-MM-DD
	Guests          int     `json:"guests"`
	RoomType        string  `json:"room_type"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	PaymentMethod   *string `json:"payment_method,omitempty"` // online | cash
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
// Пустая дата остаётся нулевой и отклоняется валидацией как обязательное поле
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	var errs validation.Errors

	checkIn, ok := parseDate(r.CheckIn)
	if !ok {
		errs = append(errs, validation.FieldError{Field: "check_in", Message: msgInvalidDate})
	}
	checkOut, ok := parseDate(r.CheckOut)
	if !ok {
		errs = append(errs, validation.FieldError{Field: "check_out", Message: msgInvalidDate})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	req := domain.BookingRequest{
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          r.Guests,
		RoomType:        r.RoomType,
		SpecialRequests: r.SpecialRequests,
	}
	if r.PaymentMethod != nil && *r.PaymentMethod != "" {
		method := domain.PaymentMethod(*r.PaymentMethod)
		req.PaymentMethod = &method
	}

	return &createBooking.Request{Booking: req}, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	*bookingModels.BookingResponse
	Priced bool `json:"priced"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingResponse: bookingModels.FromDomainBooking(resp.Booking),
		Priced:          resp.Priced,
	}
}
