package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/pricing"
)

var (
	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований гостя
type GetUserBookingsRequest struct {
	UserID int64   `json:"user_id"`
	Status *string `json:"status,omitempty"`
}

// ListBookingsRequest запрос сотрудника на список бронирований
type ListBookingsRequest struct {
	Status   *string `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	FromDate *string `json:"from_date,omitempty"` // Заезд не раньше, YYYY-MM-DD (опционально)
	ToDate   *string `json:"to_date,omitempty"`   // Заезд не позже, YYYY-MM-DD (опционально)
	Limit    uint64  `json:"limit,omitempty"`
	Offset   uint64  `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Limit:  r.Limit,
		Offset: r.Offset,
	}

	if filter.Limit == 0 {
		filter.Limit = domain.DefaultListLimit
	}
	if filter.Limit > domain.MaxListLimit {
		filter.Limit = domain.MaxListLimit
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.FromDate != nil {
		from, err := time.Parse(domain.DateFormat, *r.FromDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.FromDate = &from
	}

	if r.ToDate != nil {
		to, err := time.Parse(domain.DateFormat, *r.ToDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.ToDate = &to
	}

	return filter, nil
}

// UpdateBookingRequest изменения гостя; nil поля не меняются
type UpdateBookingRequest struct {
	GuestName       *string `json:"guest_name,omitempty"`
	GuestEmail      *string `json:"guest_email,omitempty"`
	GuestPhone      *string `json:"guest_phone,omitempty"`
	CheckIn         *string `json:"check_in,omitempty"`  // YYYY-MM-DD
	CheckOut        *string `json:"check_out,omitempty"` // YYYY-MM-DD
	Guests          *int    `json:"guests,omitempty"`
	RoomType        *string `json:"room_type,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	PaymentMethod   *string `json:"payment_method,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64    `json:"id"`
	UserID          int64    `json:"user_id"`
	GuestName       string   `json:"guest_name"`
	GuestEmail      string   `json:"guest_email"`
	GuestPhone      string   `json:"guest_phone"`
	CheckIn         string   `json:"check_in"`  // "2025-07-01"
	CheckOut        string   `json:"check_out"` // "2025-07-04"
	Guests          int      `json:"guests"`
	RoomType        string   `json:"room_type"`
	SpecialRequests *string  `json:"special_requests,omitempty"`
	Status          string   `json:"status"`
	AdminNotes      *string  `json:"admin_notes,omitempty"`
	TotalNights     int      `json:"total_nights"`
	NightlyRate     *float64 `json:"nightly_rate,omitempty"`
	TotalPrice      *float64 `json:"total_price,omitempty"`
	PaymentMethod   *string  `json:"payment_method,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// InvoiceResponse счёт по бронированию с отдельной строкой налога
type InvoiceResponse struct {
	BookingID int64   `json:"booking_id"`
	RoomType  string  `json:"room_type"`
	CheckIn   string  `json:"check_in"`
	CheckOut  string  `json:"check_out"`
	Nights    int     `json:"nights"`
	Rate      float64 `json:"nightly_rate"`
	Subtotal  float64 `json:"subtotal"`
	TaxRate   float64 `json:"tax_rate"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CheckIn:         b.CheckIn.Format(domain.DateFormat),
		CheckOut:        b.CheckOut.Format(domain.DateFormat),
		Guests:          b.Guests,
		RoomType:        b.RoomType,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		AdminNotes:      b.AdminNotes,
		TotalNights:     b.TotalNights,
		NightlyRate:     b.NightlyRate,
		TotalPrice:      b.TotalPrice,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.PaymentMethod != nil {
		method := string(*b.PaymentMethod)
		resp.PaymentMethod = &method
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	resp.Total = len(resp.Bookings)

	return resp
}

// FromInvoice собирает ответ со счётом
func FromInvoice(b *domain.Booking, inv pricing.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		BookingID: b.ID,
		RoomType:  b.RoomType,
		CheckIn:   b.CheckIn.Format(domain.DateFormat),
		CheckOut:  b.CheckOut.Format(domain.DateFormat),
		Nights:    inv.Nights,
		Rate:      inv.NightlyRate,
		Subtotal:  inv.Subtotal,
		TaxRate:   inv.TaxRate,
		Tax:       inv.Tax,
		Total:     inv.Total,
	}
}
