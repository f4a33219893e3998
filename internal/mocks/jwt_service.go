package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/wellbeing-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	// Token is returned by GenerateToken when Err is nil.
	Token string
	// UserID is returned by ValidateToken when Err is nil.
	UserID uuid.UUID
	// Err, when set, is returned by both methods.
	Err error

	// Function fields for customizable behavior
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (uuid.UUID, error)
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken implements the JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.Err != nil {
		return uuid.Nil, m.Err
	}
	return m.UserID, nil
}
