package transition_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, adminNotes *string, updatedAt time.Time) error
}

// Dispatcher отправляет уведомления гостям
type Dispatcher interface {
	Send(ctx context.Context, intent *domain.NotificationIntent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учёт переходов и доставок уведомлений
type MetricsRecorder interface {
	RecordTransition(status string, changed bool)
	RecordNotification(delivered bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
