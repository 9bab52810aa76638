package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRejected  BookingStatus = "rejected"
)

// PaymentMethod is the payment option chosen by the guest. Only recorded, never processed.
type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "online"
	PaymentCash   PaymentMethod = "cash"
)

// BookingRequest is raw guest input before validation.
// Tags are evaluated by the validation package.
type BookingRequest struct {
	GuestName       string         `validate:"guest_name"`
	GuestEmail      string         `validate:"required,email"`
	GuestPhone      string         `validate:"guest_phone"`
	CheckIn         time.Time      `validate:"required"`
	CheckOut        time.Time      `validate:"required,gtfield=CheckIn"`
	Guests          int            `validate:"guests"`
	RoomType        string         `validate:"required,room_title"`
	SpecialRequests *string        `validate:"omitempty,special_requests"`
	PaymentMethod   *PaymentMethod `validate:"omitempty,oneof=online cash"`
}

// Booking represents a room reservation
type Booking struct {
	ID     int64
	UserID int64 // владелец бронирования (гость)

	GuestName  string
	GuestEmail string
	GuestPhone string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int

	// RoomType is free text, not a reference into the catalog.
	RoomType        string
	SpecialRequests *string

	Status     BookingStatus
	AdminNotes *string

	TotalNights int
	// Set only when RoomType matched a catalog room at creation time
	NightlyRate   *float64
	TotalPrice    *float64
	PaymentMethod *PaymentMethod

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if staff has not acted on the booking yet
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// CanBeEditedByGuest returns true if the owning guest may still change the booking
func (b *Booking) CanBeEditedByGuest() bool {
	return b.Status == StatusPending
}

// IsPriced returns true if the booking carries a nightly rate and total price
func (b *Booking) IsPriced() bool {
	return b.NightlyRate != nil && b.TotalPrice != nil
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// ToRequest extracts the guest-editable part of the booking
func (b *Booking) ToRequest() BookingRequest {
	return BookingRequest{
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		RoomType:        b.RoomType,
		SpecialRequests: b.SpecialRequests,
		PaymentMethod:   b.PaymentMethod,
	}
}

// BookingsFilter фильтр для списка бронирований
type BookingsFilter struct {
	UserID   *int64         // Только бронирования гостя (опционально)
	Status   *BookingStatus // Фильтр по статусу (опционально)
	FromDate *time.Time     // Заезд не раньше (опционально)
	ToDate   *time.Time     // Заезд не позже (опционально)
	Limit    uint64         // 0 = без ограничения
	Offset   uint64
}
