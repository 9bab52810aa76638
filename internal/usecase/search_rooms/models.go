package search_rooms

import "github.com/m04kA/SMC-HotelReservations/internal/domain"

// Response результат поиска номеров
type Response struct {
	Rooms []*domain.Room // Подходящие номера в порядке каталога
	Total int            // Количество найденных номеров
	// CriteriaApplied false означает, что критерии не заданы и возвращён весь каталог
	CriteriaApplied bool
}
