package models

import "time"

// UserRole represents the portal roles used by the RBAC layer.
type UserRole string

const (
	RoleAdmin       UserRole = "ADMIN"
	RoleRCAdmin     UserRole = "RC_ADMIN"
	RoleDistributor UserRole = "DISTRIBUTOR"
	RoleStudent     UserRole = "STUDENT"
)

// ValidRole reports whether the raw value names a known role.
func ValidRole(raw string) bool {
	switch UserRole(raw) {
	case RoleAdmin, RoleRCAdmin, RoleDistributor, RoleStudent:
		return true
	}
	return false
}

// User represents an application user stored in the users table.
// Students carry an enrollment number; RC admins and distributors are
// optionally pinned to a regional center or zone.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Phone        string    `db:"phone" json:"phone,omitempty"`
	Address      string    `db:"address" json:"address,omitempty"`
	Role         UserRole  `db:"role" json:"role"`
	EnrollmentNo *string   `db:"enrollment_no" json:"enrollment_no,omitempty"`
	RCID         *string   `db:"rc_id" json:"rc_id,omitempty"`
	ZoneID       *string   `db:"zone_id" json:"zone_id,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
