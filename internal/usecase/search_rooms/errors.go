package search_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных критериях поиска
	ErrInvalidInput = errors.New("search_rooms: invalid search criteria")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_rooms: internal error")
)
