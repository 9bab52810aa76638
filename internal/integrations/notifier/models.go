package notifier

import (
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Message тело запроса к сервису уведомлений
type Message struct {
	ID         string  `json:"id"` // ключ идемпотентности на стороне получателя
	BookingID  int64   `json:"booking_id"`
	GuestName  string  `json:"guest_name"`
	GuestEmail string  `json:"guest_email"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	RoomType   string  `json:"room_type"`
	Status     string  `json:"status"`
	AdminNotes *string `json:"admin_notes,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewMessage преобразует доменное намерение в тело запроса
func NewMessage(intent *domain.NotificationIntent) Message {
	return Message{
		ID:         intent.ID,
		BookingID:  intent.BookingID,
		GuestName:  intent.GuestName,
		GuestEmail: intent.GuestEmail,
		CheckIn:    intent.CheckIn.Format(domain.DateFormat),
		CheckOut:   intent.CheckOut.Format(domain.DateFormat),
		RoomType:   intent.RoomType,
		Status:     intent.Status.String(),
		AdminNotes: intent.AdminNotes,
		CreatedAt:  intent.CreatedAt.UTC().Format(time.RFC3339),
	}
}
