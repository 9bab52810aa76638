package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomAlreadyExists возвращается при попытке создать номер с занятым названием
	ErrRoomAlreadyExists = errors.New("room with this title already exists")

	// ErrAccessDenied возвращается, когда каталог меняет не сотрудник
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
