package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the parsed contents of an access token.
type Claims struct {
	UserID string
	Role   UserRole
	jwt.RegisteredClaims
}
