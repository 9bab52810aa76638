package get_user_bookings

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/service/bookings"
	"github.com/m04kA/SMC-HotelReservations/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelReservations/pkg/logger"
)

type serviceMock struct {
	getUserBookingsFn func(ctx context.Context, actor domain.Actor, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error)
}

func (m *serviceMock) GetUserBookings(ctx context.Context, actor domain.Actor, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	return m.getUserBookingsFn(ctx, actor, req)
}

func get(svc BookingService, path string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewWithWriter(io.Discard, logger.LevelDebug))

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/users/{userId}/bookings", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.HeaderUserID, "7")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_PassesStatusFilter(t *testing.T) {
	var got *models.GetUserBookingsRequest
	svc := &serviceMock{getUserBookingsFn: func(ctx context.Context, actor domain.Actor, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
		got = req
		return &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 10, UserID: 7}}, Total: 1}, nil
	}}

	rec := get(svc, "/api/v1/users/7/bookings?status=pending")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.UserID)
	require.NotNil(t, got.Status)
	assert.Equal(t, "pending", *got.Status)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestHandle_NoStatusFilter(t *testing.T) {
	svc := &serviceMock{getUserBookingsFn: func(ctx context.Context, actor domain.Actor, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
		assert.Nil(t, req.Status)
		return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
	}}

	rec := get(svc, "/api/v1/users/7/bookings")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{name: "bad user id", path: "/api/v1/users/abc/bookings", wantStatus: http.StatusBadRequest},
		{name: "other user", path: "/api/v1/users/8/bookings", err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "bad status", path: "/api/v1/users/7/bookings?status=archived", err: bookings.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", path: "/api/v1/users/7/bookings", err: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceMock{getUserBookingsFn: func(ctx context.Context, actor domain.Actor, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
				return nil, tt.err
			}}

			rec := get(svc, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
