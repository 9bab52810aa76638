package list_rooms

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/service/rooms"
	"github.com/m04kA/SMC-HotelReservations/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelReservations/pkg/logger"
)

type serviceMock struct {
	listFn func(ctx context.Context) (*models.RoomListResponse, error)
}

func (m *serviceMock) List(ctx context.Context) (*models.RoomListResponse, error) {
	return m.listFn(ctx)
}

func get(svc RoomService) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewWithWriter(io.Discard, logger.LevelDebug))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil))
	return rec
}

func TestHandle_List(t *testing.T) {
	svc := &serviceMock{listFn: func(ctx context.Context) (*models.RoomListResponse, error) {
		return &models.RoomListResponse{
			Rooms: []models.RoomResponse{{ID: 1, Title: "Standard"}, {ID: 2, Title: "Deluxe Twin"}},
			Total: 2,
		}, nil
	}}

	rec := get(svc)
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.RoomListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, "Deluxe Twin", body.Rooms[1].Title)
}

func TestHandle_Empty(t *testing.T) {
	svc := &serviceMock{listFn: func(ctx context.Context) (*models.RoomListResponse, error) {
		return &models.RoomListResponse{Rooms: []models.RoomResponse{}}, nil
	}}

	rec := get(svc)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rooms":[]`)
}

func TestHandle_InternalError(t *testing.T) {
	svc := &serviceMock{listFn: func(ctx context.Context) (*models.RoomListResponse, error) {
		return nil, rooms.ErrInternal
	}}

	rec := get(svc)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
