package mocks

import (
	"errors"

	"github.com/phrazzld/wellbeing-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing. It
// "hashes" by prefixing, which keeps test assertions readable.
type MockPasswordHasher struct {
	Err error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
// When ShouldSucceed is unset it verifies against MockPasswordHasher's
// prefix scheme.
type MockPasswordVerifier struct {
	ShouldSucceed bool
	UsePrefix     bool
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.UsePrefix {
		if hashedPassword == "hashed:"+password {
			return nil
		}
		return errors.New("password mismatch")
	}
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
