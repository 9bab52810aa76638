package transition_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("transition_booking: booking not found")

	// ErrAccessDenied возвращается, когда статус меняет не сотрудник
	ErrAccessDenied = errors.New("transition_booking: access denied")

	// ErrCannotCancel возвращается, когда гость отменяет бронирование не в статусе pending
	ErrCannotCancel = errors.New("transition_booking: booking can only be cancelled while pending")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_booking: internal error")
)
