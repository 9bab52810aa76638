package search_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// RoomRepository интерфейс репозитория каталога номеров
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// MetricsRecorder учёт размера выдачи поиска
type MetricsRecorder interface {
	RecordSearch(results int, criteriaApplied bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
