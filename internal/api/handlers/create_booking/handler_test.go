package create_booking

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelReservations/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelReservations/internal/validation"
	"github.com/m04kA/SMC-HotelReservations/pkg/logger"
	"github.com/m04kA/SMC-HotelReservations/pkg/ptr"
)

type useCaseMock struct {
	executeFn func(ctx context.Context, actor domain.Actor, req *createBooking.Request) (*createBooking.Response, error)
}

func (m *useCaseMock) Execute(ctx context.Context, actor domain.Actor, req *createBooking.Request) (*createBooking.Response, error) {
	return m.executeFn(ctx, actor, req)
}

const validBody = `{
	"guest_name": "Jane Doe",
	"guest_email": "jane@example.com",
	"guest_phone": "+1 555 123 4567",
	"check_in": "2025-07-01",
	"check_out": "2025-07-04",
	"guests": 2,
	"room_type": "Deluxe Room",
	"payment_method": "online"
}`

func serve(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, logger.NewWithWriter(io.Discard, logger.LevelDebug))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "7")

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	var got *createBooking.Request
	uc := &useCaseMock{executeFn: func(ctx context.Context, actor domain.Actor, req *createBooking.Request) (*createBooking.Response, error) {
		assert.Equal(t, int64(7), actor.UserID)
		got = req
		return &createBooking.Response{
			Booking: &domain.Booking{
				ID:          42,
				UserID:      7,
				CheckIn:     req.Booking.CheckIn,
				CheckOut:    req.Booking.CheckOut,
				RoomType:    req.Booking.RoomType,
				Status:      domain.StatusPending,
				TotalNights: 3,
				NightlyRate: ptr.Ptr(199.0),
				TotalPrice:  ptr.Ptr(597.0),
			},
			Priced: true,
		}, nil
	}}

	rec := serve(t, uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), got.Booking.CheckIn)
	require.NotNil(t, got.Booking.PaymentMethod)
	assert.Equal(t, domain.PaymentOnline, *got.Booking.PaymentMethod)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["id"])
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "2025-07-04", body["check_out"])
	assert.Equal(t, float64(597), body["total_price"])
	assert.Equal(t, true, body["priced"])
}

func TestHandle_BadDateIsFieldError(t *testing.T) {
	uc := &useCaseMock{executeFn: func(ctx context.Context, actor domain.Actor, req *createBooking.Request) (*createBooking.Response, error) {
		t.Fatal("use case must not be called")
		return nil, nil
	}}

	rec := serve(t, uc, strings.Replace(validBody, `"2025-07-01"`, `"01.07.2025"`, 1))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "check_in", body.Fields[0].Field)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed json", body: `{"guest_name":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"nickname":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "validation", body: validBody, err: validation.NewFieldError("guest_email", "некорректный email"), wantStatus: http.StatusBadRequest},
		{name: "room not available", body: validBody, err: createBooking.ErrRoomNotAvailable, wantStatus: http.StatusConflict},
		{name: "internal", body: validBody, err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseMock{executeFn: func(ctx context.Context, actor domain.Actor, req *createBooking.Request) (*createBooking.Response, error) {
				return nil, tt.err
			}}

			rec := serve(t, uc, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
