package cancel_booking

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	transitionBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/transition_booking"
	"github.com/m04kA/SMC-HotelReservations/pkg/logger"
)

type useCaseMock struct {
	cancelFn func(ctx context.Context, actor domain.Actor, bookingID int64) (*transitionBooking.Response, error)
}

func (m *useCaseMock) CancelByGuest(ctx context.Context, actor domain.Actor, bookingID int64) (*transitionBooking.Response, error) {
	return m.cancelFn(ctx, actor, bookingID)
}

func newRouter(uc CancelBookingUseCase) *mux.Router {
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, logger.LevelDebug))

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", h.Handle).Methods(http.MethodPatch)
	return r
}

func patch(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, path, nil)
	req.Header.Set(middleware.HeaderUserID, "7")
	req.Header.Set(middleware.HeaderUserRole, "guest")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Cancel(t *testing.T) {
	var gotActor domain.Actor
	var gotID int64
	uc := &useCaseMock{cancelFn: func(ctx context.Context, actor domain.Actor, bookingID int64) (*transitionBooking.Response, error) {
		gotActor, gotID = actor, bookingID
		return &transitionBooking.Response{
			Booking:      &domain.Booking{ID: bookingID, UserID: actor.UserID, Status: domain.StatusCancelled},
			Notification: &domain.NotificationIntent{ID: "n-2", BookingID: bookingID, Status: domain.StatusCancelled},
			Delivered:    true,
		}, nil
	}}

	rec := patch(newRouter(uc), "/api/v1/bookings/10/cancel")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, domain.Actor{UserID: 7, Role: domain.RoleGuest}, gotActor)
	assert.Equal(t, int64(10), gotID)

	var body CancelBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Booking)
	assert.Equal(t, "cancelled", body.Booking.Status)
	assert.True(t, body.Notified)
	assert.True(t, body.Delivered)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{name: "bad id", path: "/api/v1/bookings/abc/cancel", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/api/v1/bookings/0/cancel", wantStatus: http.StatusBadRequest},
		{name: "not owner", path: "/api/v1/bookings/10/cancel", err: transitionBooking.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "not found", path: "/api/v1/bookings/404/cancel", err: transitionBooking.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "already confirmed", path: "/api/v1/bookings/10/cancel", err: transitionBooking.ErrCannotCancel, wantStatus: http.StatusConflict},
		{name: "internal", path: "/api/v1/bookings/10/cancel", err: transitionBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseMock{cancelFn: func(ctx context.Context, actor domain.Actor, bookingID int64) (*transitionBooking.Response, error) {
				return nil, tt.err
			}}

			rec := patch(newRouter(uc), tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_NoActor(t *testing.T) {
	h := NewHandler(&useCaseMock{}, logger.NewWithWriter(io.Discard, logger.LevelDebug))

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/10/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": "10"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
