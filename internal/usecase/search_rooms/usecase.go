package search_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// UseCase use case поиска номеров по каталогу
type UseCase struct {
	roomRepo RoomRepository
	metrics  MetricsRecorder
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute загружает каталог и применяет к нему критерии поиска
func (uc *UseCase) Execute(ctx context.Context, criteria domain.SearchCriteria) (*Response, error) {
	uc.logger.Info("SearchRooms: query=%q, facilities=%v, onlyAvailable=%t",
		criteria.Query, criteria.Facilities, criteria.OnlyAvailable)

	// 1. Валидация критериев
	if err := validateCriteria(criteria); err != nil {
		uc.logger.Warn("SearchRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем каталог
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("SearchRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 3. Фильтруем
	applied := !criteria.IsEmpty()
	found := rooms
	if applied {
		found = Filter(rooms, criteria)
	}

	uc.metrics.RecordSearch(len(found), applied)
	uc.logger.Info("SearchRooms: found %d of %d rooms", len(found), len(rooms))

	return &Response{
		Rooms:           found,
		Total:           len(found),
		CriteriaApplied: applied,
	}, nil
}
