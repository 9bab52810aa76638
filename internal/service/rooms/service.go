package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelReservations/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelReservations/internal/validation"
)

// Service сервис для работы с каталогом номеров
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Create добавляет номер в каталог
// Доступно только сотрудникам
func (s *Service) Create(ctx context.Context, actor domain.Actor, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room title=%q by user=%d", req.Title, actor.UserID)

	// 1. Проверяем права доступа
	if !actor.IsStaff() {
		s.logger.Warn("Create: user=%d is not staff", actor.UserID)
		return nil, ErrAccessDenied
	}

	// 2. Валидируем входные данные
	normalizeCreate(req)
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 3. Создаем номер
	created, err := s.roomRepo.Create(ctx, req.ToDomainRoom())
	if err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateRoom) {
			s.logger.Warn("Create: room title=%q already exists", req.Title)
			return nil, ErrRoomAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// GetByID получает номер по ID
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// List получает весь каталог
// Публичный метод - доступен всем
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// Update обновляет номер
// Доступно только сотрудникам
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, id int64, actor domain.Actor, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%d by user=%d", id, actor.UserID)

	// 1. Проверяем права доступа
	if !actor.IsStaff() {
		s.logger.Warn("Update: user=%d is not staff", actor.UserID)
		return nil, ErrAccessDenied
	}

	// 2. Валидируем входные данные
	normalizeUpdate(req)
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущий номер
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 4. Применяем изменения и сохраняем
	req.ApplyTo(room)

	updated, err := s.roomRepo.Update(ctx, id, room)
	if err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("Update: room id=%d not found during update", id)
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrDuplicateRoom):
			s.logger.Warn("Update: room title=%q already exists", room.Title)
			return nil, ErrRoomAlreadyExists
		}
		s.logger.Error("Update: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%d", id)
	return models.FromDomainRoom(updated), nil
}

// Delete удаляет номер из каталога
// Доступно только сотрудникам. Существующие бронирования не затрагиваются
func (s *Service) Delete(ctx context.Context, id int64, actor domain.Actor) error {
	s.logger.Info("Delete: deleting room id=%d by user=%d", id, actor.UserID)

	if !actor.IsStaff() {
		s.logger.Warn("Delete: user=%d is not staff", actor.UserID)
		return ErrAccessDenied
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Delete: room id=%d not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted room id=%d", id)
	return nil
}

// Вспомогательные методы

func normalizeCreate(req *models.CreateRoomRequest) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Features = trimFeatures(req.Features)
}

func normalizeUpdate(req *models.UpdateRoomRequest) {
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		req.Title = &title
	}
	if req.Features != nil {
		features := trimFeatures(*req.Features)
		req.Features = &features
	}
}

// trimFeatures обрезает теги и убирает пустые
func trimFeatures(features []string) []string {
	out := make([]string, 0, len(features))
	for _, f := range features {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
