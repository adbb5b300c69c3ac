package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims carries the business identity embedded in issued tokens.
type UserClaims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}
