package service

import "errors"

// Token validation failures. Callers rely on the distinction to surface
// a dedicated message for expired credentials.
var (
	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid is returned for any other verification failure
	// (bad signature, malformed token, wrong signing method).
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims carries the identity encoded in a bearer token.
type Claims struct {
	UserID uint
	Email  string
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed, time-limited credential carrying the
	// user's id and email.
	Generate(userID uint, email string) (string, error)

	// Validate checks a token string and recovers its claims.
	// Returns ErrTokenExpired or ErrTokenInvalid on failure.
	Validate(tokenString string) (*Claims, error)
}
