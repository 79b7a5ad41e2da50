package domain

import "github.com/google/uuid"

// Role distinguishes the coach from clients
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Identity is the authenticated caller as supplied by the auth gateway.
// A zero UserID means anonymous.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// IsAnonymous returns true when no user is signed in
func (i Identity) IsAnonymous() bool {
	return i.UserID == uuid.Nil
}

// IsAdmin returns true for the practice's own account
func (i Identity) IsAdmin() bool {
	return !i.IsAnonymous() && i.Role == RoleAdmin
}

// CanAccess reports whether the caller may see data owned by owner
func (i Identity) CanAccess(owner uuid.UUID) bool {
	if i.IsAnonymous() {
		return false
	}
	return i.IsAdmin() || i.UserID == owner
}
