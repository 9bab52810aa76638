package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingBooking() *Booking {
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &Booking{
		ID:          42,
		UserID:      7,
		GuestName:   "Anna Smith",
		GuestEmail:  "anna@example.com",
		GuestPhone:  "+1234567890",
		CheckIn:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		Guests:      2,
		RoomType:    "Deluxe Room",
		Status:      StatusPending,
		TotalNights: 3,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestApplyTransition_ConfirmEmitsOneIntent(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	notes := "Late check-in arranged"

	updated, intent := ApplyTransition(pendingBooking(), StatusConfirmed, &notes, now)

	assert.Equal(t, StatusConfirmed, updated.Status)
	assert.Equal(t, &notes, updated.AdminNotes)
	assert.Equal(t, now, updated.UpdatedAt)

	require.NotNil(t, intent)
	assert.NotEmpty(t, intent.ID)
	assert.Equal(t, int64(42), intent.BookingID)
	assert.Equal(t, "Anna Smith", intent.GuestName)
	assert.Equal(t, "anna@example.com", intent.GuestEmail)
	assert.Equal(t, "Deluxe Room", intent.RoomType)
	assert.Equal(t, StatusConfirmed, intent.Status)
	assert.Equal(t, &notes, intent.AdminNotes)

	again, second := ApplyTransition(updated, StatusConfirmed, nil, now.Add(time.Minute))
	assert.Nil(t, second)
	assert.Equal(t, StatusConfirmed, again.Status)
	assert.Equal(t, &notes, again.AdminNotes, "nil notes keep the previous value")
}

func TestApplyTransition_DoesNotMutateInput(t *testing.T) {
	b := pendingBooking()

	_, _ = ApplyTransition(b, StatusRejected, nil, time.Now())

	assert.Equal(t, StatusPending, b.Status)
}

func TestApplyTransition_PendingNeverNotifies(t *testing.T) {
	b := pendingBooking()
	b.Status = StatusConfirmed

	updated, intent := ApplyTransition(b, StatusPending, nil, time.Now())

	assert.Equal(t, StatusPending, updated.Status)
	assert.Nil(t, intent)
}

func TestApplyTransition_CrossTerminalNotifies(t *testing.T) {
	b := pendingBooking()
	b.Status = StatusConfirmed

	updated, intent := ApplyTransition(b, StatusCancelled, nil, time.Now())

	assert.Equal(t, StatusCancelled, updated.Status)
	require.NotNil(t, intent)
	assert.Equal(t, StatusCancelled, intent.Status)
}

func TestParseBookingStatus(t *testing.T) {
	for _, s := range AllStatuses {
		got, err := ParseBookingStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseBookingStatus("in_progress")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBookingStatus_Predicates(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, BookingStatus("unknown").IsTerminal())

	assert.False(t, StatusPending.Notifies())
	assert.True(t, StatusCancelled.Notifies())
}
