package transition_booking

import "github.com/m04kA/SMC-HotelReservations/internal/domain"

// Request модель запроса на смену статуса
type Request struct {
	BookingID  int64
	Status     string  // Новый статус (pending, confirmed, cancelled, rejected)
	AdminNotes *string // nil = оставить заметки без изменений
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	Booking *domain.Booking
	// Notification не nil, если переход породил уведомление гостю
	Notification *domain.NotificationIntent
	// Delivered true, если уведомление принято диспетчером
	Delivered bool
}
