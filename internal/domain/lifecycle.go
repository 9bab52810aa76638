package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidStatus is returned for a status outside the known set
var ErrInvalidStatus = errors.New("invalid booking status")

// IsValid returns true if the status is a recognized booking status
func (s BookingStatus) IsValid() bool {
	return containsStatus(AllStatuses, s)
}

// IsTerminal returns true for confirmed, cancelled and rejected.
// Staff may still move a booking between terminal statuses.
func (s BookingStatus) IsTerminal() bool {
	return s != StatusPending && s.IsValid()
}

// Notifies returns true if moving into this status must notify the guest
func (s BookingStatus) Notifies() bool {
	return containsStatus(NotifyingStatuses, s)
}

func containsStatus(list []BookingStatus, s BookingStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus converts a string to a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// NotificationIntent describes a guest-facing message. Delivery is someone else's job.
type NotificationIntent struct {
	ID         string
	BookingID  int64
	GuestName  string
	GuestEmail string
	CheckIn    time.Time
	CheckOut   time.Time
	RoomType   string
	Status     BookingStatus
	AdminNotes *string
	CreatedAt  time.Time
}

// ApplyTransition returns a copy of b moved to status `to` with the given admin notes.
// A notification intent is returned only when the status actually changes and the
// target notifies; re-asserting the current status yields nil.
// Any valid status may follow any other: the lifecycle does not forbid transitions.
func ApplyTransition(b *Booking, to BookingStatus, adminNotes *string, now time.Time) (*Booking, *NotificationIntent) {
	updated := *b
	updated.Status = to
	if adminNotes != nil {
		updated.AdminNotes = adminNotes
	}
	updated.UpdatedAt = now

	if b.Status == to || !to.Notifies() {
		return &updated, nil
	}

	return &updated, NewNotificationIntent(&updated, now)
}

// NewNotificationIntent builds the intent for the booking's current status
func NewNotificationIntent(b *Booking, now time.Time) *NotificationIntent {
	return &NotificationIntent{
		ID:         uuid.NewString(),
		BookingID:  b.ID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		RoomType:   b.RoomType,
		Status:     b.Status,
		AdminNotes: b.AdminNotes,
		CreatedAt:  now,
	}
}
