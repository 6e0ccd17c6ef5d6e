package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID uint
	Email  string
	JTI    string
}

// AccessTokenClaims is the typed shape of the issued JWT: subject is the user
// id rendered as a string, plus an email claim.
type AccessTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
