package auth

import "github.com/kmorales-dev/closetwish-backend/internal/users"

// RegisterRequest is the signup payload. Both fields are mandatory.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest carries the credentials to verify. Missing fields are not a
// validation failure here; they simply never match and read as bad
// credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DeleteUserRequest names the account to remove by email.
type DeleteUserRequest struct {
	Email string `json:"email"`
}

// AuthResponse pairs a freshly minted token with the user it identifies.
type AuthResponse struct {
	Token string        `json:"token"`
	User  users.UserDTO `json:"user"`
}
