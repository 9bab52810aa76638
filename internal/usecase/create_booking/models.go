package create_booking

import "github.com/m04kA/SMC-HotelReservations/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	Booking domain.BookingRequest // Данные гостя до валидации
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
	// Priced false, если room_type не совпал ни с одним номером каталога
	Priced bool
}
