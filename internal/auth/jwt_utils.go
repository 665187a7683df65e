package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrAuthFailure covers every credential problem: unknown user, wrong
// password, bad token. The message is deliberately generic so callers
// cannot tell which check failed.
var ErrAuthFailure = errors.New("invalid credentials")

var jwtKey []byte

// Init sets the signing key. Must be called once at startup before any
// token is issued or validated.
func Init(secret string) {
	jwtKey = []byte(secret)
}

// Claims is what rides inside the token. Permissions are NOT embedded:
// the auth middleware re-reads the user record per request so permission
// edits take effect without a re-login.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT valid for 24 hours.
func GenerateToken(userID, role string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateToken checks signature and expiry and returns the claims.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, ErrAuthFailure
	}
	if !token.Valid {
		return nil, ErrAuthFailure
	}

	return claims, nil
}
