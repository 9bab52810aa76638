package update_booking

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/service/bookings"
	"github.com/m04kA/SMC-HotelReservations/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelReservations/internal/validation"
	"github.com/m04kA/SMC-HotelReservations/pkg/logger"
)

type serviceMock struct {
	updateFn func(ctx context.Context, id int64, actor domain.Actor, req *models.UpdateBookingRequest) (*models.BookingResponse, error)
}

func (m *serviceMock) UpdateByGuest(ctx context.Context, id int64, actor domain.Actor, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	return m.updateFn(ctx, id, actor, req)
}

func newRouter(svc BookingService) *mux.Router {
	h := NewHandler(svc, logger.NewWithWriter(io.Discard, logger.LevelDebug))

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/bookings/{bookingId}", h.Handle).Methods(http.MethodPatch)
	return r
}

func patch(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "7")
	req.Header.Set(middleware.HeaderUserRole, "guest")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Update(t *testing.T) {
	var got *models.UpdateBookingRequest
	svc := &serviceMock{updateFn: func(ctx context.Context, id int64, actor domain.Actor, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
		assert.Equal(t, int64(10), id)
		assert.Equal(t, int64(7), actor.UserID)
		got = req
		return &models.BookingResponse{ID: id, Guests: *req.Guests, Status: "pending"}, nil
	}}

	rec := patch(newRouter(svc), "/api/v1/bookings/10", `{"guests":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, got)
	require.NotNil(t, got.Guests)
	assert.Equal(t, 3, *got.Guests)
	assert.Nil(t, got.GuestName)

	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Guests)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "bad id", path: "/api/v1/bookings/abc", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", path: "/api/v1/bookings/10", body: `{"status":"confirmed"}`, wantStatus: http.StatusBadRequest},
		{name: "validation", path: "/api/v1/bookings/10", body: `{"guests":0}`,
			err: validation.NewFieldError("guests", "минимальное значение 1"), wantStatus: http.StatusBadRequest},
		{name: "not found", path: "/api/v1/bookings/404", body: `{}`,
			err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "not owner", path: "/api/v1/bookings/10", body: `{}`,
			err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "not pending", path: "/api/v1/bookings/10", body: `{"guests":2}`,
			err: bookings.ErrCannotUpdate, wantStatus: http.StatusConflict, wantMsg: msgCannotUpdate},
		{name: "room not available", path: "/api/v1/bookings/10", body: `{"room_type":"Closed Wing"}`,
			err: bookings.ErrRoomNotAvailable, wantStatus: http.StatusConflict, wantMsg: msgRoomNotAvailable},
		{name: "internal", path: "/api/v1/bookings/10", body: `{}`,
			err: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceMock{updateFn: func(ctx context.Context, id int64, actor domain.Actor, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
				return nil, tt.err
			}}

			rec := patch(newRouter(svc), tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.wantMsg)
			}
		})
	}
}
