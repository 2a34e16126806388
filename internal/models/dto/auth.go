package dto

import (
	"time"

	"github.com/bob3x/movieflix-be/internal/models"
)

type RegisterRequest struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Email    string     `json:"email"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UpdateUserRequest carries the mutable profile fields. Empty fields are
// left unchanged; the username itself is immutable.
type UpdateUserRequest struct {
	Email    string     `json:"email,omitempty"`
	Password string     `json:"password,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
}
