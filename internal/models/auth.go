package models

import "github.com/golang-jwt/jwt/v5"

// RegisterRequest holds the payload for user registration. Only email and
// password are mandatory; everything else is profile data.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	// Role may only be honored when the caller is an authenticated admin.
	Role         string `json:"role"`
	EnrollmentNo string `json:"enrollmentNo"`
}

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserInfo describes the authenticated user in responses.
type UserInfo struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	FirstName    string   `json:"first_name,omitempty"`
	LastName     string   `json:"last_name,omitempty"`
	Role         UserRole `json:"role"`
	EnrollmentNo string   `json:"enrollment_no,omitempty"`
	RCID         string   `json:"rc_id,omitempty"`
	ZoneID       string   `json:"zone_id,omitempty"`
}

// AuthResult pairs the signed token with the public user view.
type AuthResult struct {
	Token string   `json:"-"`
	User  UserInfo `json:"user"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	UserID       string   `json:"user_id"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	FirstName    string   `json:"first_name,omitempty"`
	EnrollmentNo string   `json:"enrollment_no,omitempty"`
	RCID         string   `json:"rc_id,omitempty"`
	ZoneID       string   `json:"zone_id,omitempty"`
	jwt.RegisteredClaims
}
