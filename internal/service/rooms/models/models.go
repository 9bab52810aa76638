package models

import (
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на добавление номера в каталог
type CreateRoomRequest struct {
	Title       string   `json:"title" validate:"required,room_title"`
	Description string   `json:"description"`
	NightlyRate float64  `json:"nightly_rate" validate:"gte=0"`
	Features    []string `json:"features" validate:"room_features,dive,room_feature"`
	IsAvailable *bool    `json:"is_available,omitempty"` // nil = доступен
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

// ToDomainRoom конвертирует request в domain модель
func (r *CreateRoomRequest) ToDomainRoom() *domain.Room {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}

	return &domain.Room{
		Title:       r.Title,
		Description: r.Description,
		NightlyRate: r.NightlyRate,
		Features:    r.Features,
		IsAvailable: available,
		ImageURL:    r.ImageURL,
	}
}

// UpdateRoomRequest запрос на обновление номера
// Все поля опциональны - обновляются только переданные значения
type UpdateRoomRequest struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,min=1,room_title"`
	Description *string   `json:"description,omitempty"`
	NightlyRate *float64  `json:"nightly_rate,omitempty" validate:"omitempty,gte=0"`
	Features    *[]string `json:"features,omitempty" validate:"omitempty,room_features,dive,room_feature"`
	IsAvailable *bool     `json:"is_available,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty" validate:"omitempty,url"`
}

// ApplyTo накладывает переданные поля на существующий номер
func (r *UpdateRoomRequest) ApplyTo(room *domain.Room) {
	if r.Title != nil {
		room.Title = *r.Title
	}
	if r.Description != nil {
		room.Description = *r.Description
	}
	if r.NightlyRate != nil {
		room.NightlyRate = *r.NightlyRate
	}
	if r.Features != nil {
		room.Features = *r.Features
	}
	if r.IsAvailable != nil {
		room.IsAvailable = *r.IsAvailable
	}
	if r.ImageURL != nil {
		room.ImageURL = r.ImageURL
	}
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	NightlyRate float64   `json:"nightly_rate"`
	Features    []string  `json:"features"`
	IsAvailable bool      `json:"is_available"`
	Capacity    int       `json:"capacity"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	features := r.Features
	if features == nil {
		features = []string{}
	}

	return &RoomResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		NightlyRate: r.NightlyRate,
		Features:    features,
		IsAvailable: r.IsAvailable,
		Capacity:    r.Capacity(),
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}
	resp.Total = len(resp.Rooms)

	return resp
}
