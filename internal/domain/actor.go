package domain

// Role of the caller as asserted by the upstream gateway
type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
)

// Actor is the caller of an operation. Staff-only operations take it explicitly.
type Actor struct {
	UserID int64
	Role   Role
}

// IsStaff returns true if the actor may manage rooms and booking statuses
func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff
}

// CanView returns true if the actor may read the booking
func (a Actor) CanView(b *Booking) bool {
	return a.IsStaff() || b.IsOwnedBy(a.UserID)
}

// ParseRole converts a header value into a Role, defaulting to guest
func ParseRole(s string) Role {
	if Role(s) == RoleStaff {
		return RoleStaff
	}
	return RoleGuest
}
