package notifier

import (
	"bytes"
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

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/logger"
)

func testIntent() *domain.NotificationIntent {
	notes := "Ждём вас"
	return &domain.NotificationIntent{
		ID:         "4b7c1f0e-8a55-4d4c-9d0b-3f3f0f7a9e21",
		BookingID:  7,
		GuestName:  "Jane Doe",
		GuestEmail: "jane@example.com",
		CheckIn:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		RoomType:   "Deluxe",
		Status:     domain.StatusConfirmed,
		AdminNotes: &notes,
		CreatedAt:  time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestClient_Send(t *testing.T) {
	var got Message
	var idempotencyKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/notifications", r.URL.Path)
		idempotencyKey = r.Header.Get("Idempotency-Key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewWithWriter(io.Discard, logger.LevelDebug))
	intent := testIntent()

	require.NoError(t, client.Send(context.Background(), intent))

	assert.Equal(t, intent.ID, idempotencyKey)
	assert.Equal(t, int64(7), got.BookingID)
	assert.Equal(t, "2025-03-01", got.CheckIn)
	assert.Equal(t, "2025-03-04", got.CheckOut)
	assert.Equal(t, "confirmed", got.Status)
	require.NotNil(t, got.AdminNotes)
	assert.Equal(t, "Ждём вас", *got.AdminNotes)
}

func TestClient_Send_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewWithWriter(io.Discard, logger.LevelDebug))

	err := client.Send(context.Background(), testIntent())
	assert.ErrorIs(t, err, ErrDelivery)
}

func TestClient_Send_ErrorBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
		maxLen  int
	}{
		{
			name:    "json error response",
			body:    `{"code":503,"message":"mail relay is down"}`,
			wantMsg: "unexpected status code 503: mail relay is down",
		},
		{
			name:    "plain text",
			body:    "upstream timeout\n",
			wantMsg: "unexpected status code 503: upstream timeout",
		},
		{
			name:   "oversized body is truncated",
			body:   strings.Repeat("x", 1<<20),
			maxLen: maxErrorBodySize + 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, time.Second, logger.NewWithWriter(io.Discard, logger.LevelDebug))

			err := client.Send(context.Background(), testIntent())
			require.ErrorIs(t, err, ErrDelivery)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			if tt.maxLen > 0 {
				assert.LessOrEqual(t, len(err.Error()), tt.maxLen)
			}
		})
	}
}

func TestClient_Send_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, 200*time.Millisecond, logger.NewWithWriter(io.Discard, logger.LevelDebug))

	err := client.Send(context.Background(), testIntent())
	assert.ErrorIs(t, err, ErrDelivery)
}

func TestSend_NilIntent(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, logger.LevelDebug)

	assert.ErrorIs(t, NewClient("http://localhost", time.Second, log).Send(context.Background(), nil), ErrNilIntent)
	assert.ErrorIs(t, NewLogDispatcher(log).Send(context.Background(), nil), ErrNilIntent)
}

func TestLogDispatcher_Send(t *testing.T) {
	var buf bytes.Buffer
	d := NewLogDispatcher(logger.NewWithWriter(&buf, logger.LevelDebug))

	require.NoError(t, d.Send(context.Background(), testIntent()))
	assert.Contains(t, buf.String(), "booking_id=7")
	assert.Contains(t, buf.String(), "jane@example.com")
}
