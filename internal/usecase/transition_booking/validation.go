package transition_booking

import (
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/validation"
)

const msgInvalidBookingID = "некорректный идентификатор бронирования"

// validateRequest проверяет статус и заметки администратора
func validateRequest(req *Request) (domain.BookingStatus, *string, error) {
	if req.BookingID <= 0 {
		return "", nil, validation.NewFieldError("booking_id", msgInvalidBookingID)
	}

	status, err := domain.ParseBookingStatus(strings.TrimSpace(req.Status))
	if err != nil {
		return "", nil, validation.NewFieldError("status", "допустимые значения: pending confirmed cancelled rejected")
	}

	notes := req.AdminNotes
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if utf8.RuneCountInString(trimmed) > domain.MaxAdminNotesLength {
			return "", nil, validation.NewFieldError("admin_notes", "слишком длинные заметки")
		}
		notes = &trimmed
	}

	return status, notes, nil
}
