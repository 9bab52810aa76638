package validation

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/pricing"
	"github.com/m04kA/SMC-HotelReservations/pkg/ptr"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func validRequest(t *testing.T) domain.BookingRequest {
	return domain.BookingRequest{
		GuestName:  "Anna Smith",
		GuestEmail: "anna@example.com",
		GuestPhone: "+1234567890",
		CheckIn:    mustDate(t, "2025-07-01"),
		CheckOut:   mustDate(t, "2025-07-04"),
		Guests:     2,
		RoomType:   "Deluxe Room",
	}
}

func TestValidateBookingRequest_Valid(t *testing.T) {
	req := validRequest(t)
	req.GuestName = "  Anna Smith  "
	req.SpecialRequests = ptr.Ptr("   ")

	got, err := ValidateBookingRequest(req)

	require.NoError(t, err)
	assert.Equal(t, "Anna Smith", got.GuestName)
	assert.Nil(t, got.SpecialRequests)
	assert.Greater(t, pricing.Nights(got.CheckIn, got.CheckOut), 0)
}

func TestValidateBookingRequest_SameDayStay(t *testing.T) {
	req := validRequest(t)
	req.CheckIn = mustDate(t, "2025-06-10")
	req.CheckOut = mustDate(t, "2025-06-10")

	_, err := ValidateBookingRequest(req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	errs, ok := AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, Errors{{Field: "check_out", Message: "дата выезда должна быть позже даты заезда"}}, errs)
}

func TestValidateBookingRequest_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.BookingRequest)
		field  string
	}{
		{"short name", func(r *domain.BookingRequest) { r.GuestName = "A" }, "guest_name"},
		{"blank name", func(r *domain.BookingRequest) { r.GuestName = "   " }, "guest_name"},
		{"bad email", func(r *domain.BookingRequest) { r.GuestEmail = "anna.example.com" }, "guest_email"},
		{"short phone", func(r *domain.BookingRequest) { r.GuestPhone = "12345" }, "guest_phone"},
		{"missing check-in", func(r *domain.BookingRequest) { r.CheckIn = time.Time{} }, "check_in"},
		{"missing check-out", func(r *domain.BookingRequest) { r.CheckOut = time.Time{} }, "check_out"},
		{"check-out before check-in", func(r *domain.BookingRequest) {
			r.CheckOut = r.CheckIn.AddDate(0, 0, -1)
		}, "check_out"},
		{"no guests", func(r *domain.BookingRequest) { r.Guests = 0 }, "guests"},
		{"empty room type", func(r *domain.BookingRequest) { r.RoomType = "" }, "room_type"},
		{"unknown payment method", func(r *domain.BookingRequest) {
			pm := domain.PaymentMethod("crypto")
			r.PaymentMethod = &pm
		}, "payment_method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(&req)

			_, err := ValidateBookingRequest(req)

			errs, ok := AsErrors(err)
			require.True(t, ok, "expected validation errors, got %v", err)
			assert.True(t, errs.Has(tt.field), "expected error on %s, got %v", tt.field, errs)
		})
	}
}

func TestValidateBookingRequest_ReportsAllFields(t *testing.T) {
	_, err := ValidateBookingRequest(domain.BookingRequest{})

	errs, ok := AsErrors(err)
	require.True(t, ok)
	for _, f := range []string{"guest_name", "guest_email", "guest_phone", "check_in", "check_out", "guests", "room_type"} {
		assert.True(t, errs.Has(f), "missing error for %s", f)
	}
}

func TestValidateBookingRequest_Deterministic(t *testing.T) {
	req := validRequest(t)
	req.GuestEmail = "broken"

	_, err1 := ValidateBookingRequest(req)
	_, err2 := ValidateBookingRequest(req)

	assert.Equal(t, err1, err2)
}

func TestValidateBookingRequest_DomainBounds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *domain.BookingRequest)
		field   string
		message string
	}{
		{
			name:    "guest name below minimum",
			mutate:  func(r *domain.BookingRequest) { r.GuestName = strings.Repeat("a", domain.MinGuestNameLength-1) },
			field:   "guest_name",
			message: fmt.Sprintf("минимальная длина %d символов", domain.MinGuestNameLength),
		},
		{
			name:    "guest name above maximum",
			mutate:  func(r *domain.BookingRequest) { r.GuestName = strings.Repeat("a", domain.MaxGuestNameLength+1) },
			field:   "guest_name",
			message: fmt.Sprintf("максимальная длина %d", domain.MaxGuestNameLength),
		},
		{
			name:    "phone above maximum",
			mutate:  func(r *domain.BookingRequest) { r.GuestPhone = strings.Repeat("1", domain.MaxGuestPhoneLength+1) },
			field:   "guest_phone",
			message: fmt.Sprintf("максимальная длина %d", domain.MaxGuestPhoneLength),
		},
		{
			name: "special requests above maximum",
			mutate: func(r *domain.BookingRequest) {
				r.SpecialRequests = ptr.Ptr(strings.Repeat("x", domain.MaxSpecialRequestsLen+1))
			},
			field:   "special_requests",
			message: fmt.Sprintf("максимальная длина %d", domain.MaxSpecialRequestsLen),
		},
		{
			name:    "guests below minimum",
			mutate:  func(r *domain.BookingRequest) { r.Guests = domain.MinGuests - 1 },
			field:   "guests",
			message: fmt.Sprintf("минимальное значение %d", domain.MinGuests),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(&req)

			_, err := ValidateBookingRequest(req)

			errs, ok := AsErrors(err)
			require.True(t, ok, "expected validation errors, got %v", err)
			assert.Equal(t, Errors{{Field: tt.field, Message: tt.message}}, errs)
		})
	}
}

func TestValidateBookingRequest_AtDomainBounds(t *testing.T) {
	req := validRequest(t)
	req.GuestName = strings.Repeat("a", domain.MaxGuestNameLength)
	req.GuestPhone = strings.Repeat("1", domain.MinGuestPhoneLength)
	req.SpecialRequests = ptr.Ptr(strings.Repeat("x", domain.MaxSpecialRequestsLen))
	req.Guests = domain.MinGuests

	_, err := ValidateBookingRequest(req)

	assert.NoError(t, err)
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "guest_name", toSnake("GuestName"))
	assert.Equal(t, "check_out", toSnake("CheckOut"))
	assert.Equal(t, "room_id", toSnake("RoomID"))
	assert.Equal(t, "guests", toSnake("Guests"))
}
