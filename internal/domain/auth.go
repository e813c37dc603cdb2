package domain

import (
	"context"
	"time"
)

// Access gate contracts: the token manager authenticates bearer credentials
// into an Identity, the blacklist revokes sessions. Signing and key custody
// require a valid identity; verification deliberately does not.

type Token = string

type TokenClaims struct {
	JTI       string // unique token id
	UserID    UserID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Password hashing
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain string, encodedHash string) (bool, error)
}

// Token management (JWT; implementation in internal/auth)
type TokenManager interface {
	Issue(ctx context.Context, userID UserID, email string) (Token, TokenClaims, error)
	Parse(ctx context.Context, t Token) (TokenClaims, error)
}

// Token revocation (Redis-backed)
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, exp time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
