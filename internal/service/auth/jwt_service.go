package auth

import (
	"context"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
//
// Tokens are self-contained: the subject claim carries the user ID and
// the expiry claim is the only invalidation mechanism. There is no
// revocation list; logout is purely client-side discard.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given user.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken validates the provided token string and returns the
	// user ID it was issued for. Returns ErrInvalidToken on any failure:
	// invalid signature, malformed structure, or expiry.
	ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, error)
}
