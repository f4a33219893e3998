package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()
	verifier := NewBcryptVerifier()

	password := "correct horse battery staple"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.NoError(t, verifier.Compare(hash, password))
	assert.Error(t, verifier.Compare(hash, "wrong password"))
	assert.Error(t, verifier.Compare("not-a-bcrypt-hash", password))
}

func TestBcryptHashIsSalted(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	first, err := hasher.Hash("password1234")
	require.NoError(t, err)
	second, err := hasher.Hash("password1234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHashRejectsOverlongPassword(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	// bcrypt cannot hash more than 72 bytes
	_, err := hasher.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}
