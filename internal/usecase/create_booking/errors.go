package create_booking

import "errors"

var (
	// ErrRoomNotAvailable возвращается, когда выбранный номер снят с бронирования
	ErrRoomNotAvailable = errors.New("create_booking: room is not available")

	// ErrAccessDenied возвращается, когда бронирование создаётся без идентификатора гостя
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
