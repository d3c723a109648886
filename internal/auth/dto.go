package auth

import (
	"time"

	"github.com/drivecans/storefront-backend/internal/users"
)

// RegisterRequest carries the registration payload.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest carries the credential payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is what a successful login produces: the public user shape plus
// the opaque token the controller turns into a cookie.
type LoginResult struct {
	User      *users.UserDTO
	Token     string
	ExpiresAt time.Time
}
