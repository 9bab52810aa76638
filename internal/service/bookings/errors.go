package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotUpdate возвращается при попытке изменить бронирование не в статусе pending
	ErrCannotUpdate = errors.New("booking can only be changed while pending")

	// ErrRoomNotAvailable возвращается, когда выбранный номер снят с бронирования
	ErrRoomNotAvailable = errors.New("room is not available")

	// ErrNotPriced возвращается при запросе счёта для бронирования без цены
	ErrNotPriced = errors.New("booking has no price")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
