package domain

// Business validation constants
const (
	MinGuestNameLength    = 2
	MaxGuestNameLength    = 100
	MinGuestPhoneLength   = 10
	MaxGuestPhoneLength   = 32
	MinGuests             = 1
	MaxSpecialRequestsLen = 500
	MaxAdminNotesLength   = 1000
	MaxRoomTitleLength    = 200
	MaxRoomFeatures       = 50
	MaxRoomFeatureLength  = 100
)

// Pagination defaults for booking lists
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// NotifyingStatuses список статусов, переход в которые порождает уведомление гостю
var NotifyingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCancelled,
	StatusRejected,
}

// AllStatuses список всех статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusRejected,
}
