package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	tokens, err := NewTokens("s3cret", "dev")
	require.NoError(t, err)

	token, err := tokens.Sign("user-1", "jane@x.com", "Jane")
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "jane@x.com", claims.Email)
	assert.Equal(t, "Jane", claims.Name)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	a, err := NewTokens("secret-a", "dev")
	require.NoError(t, err)
	b, err := NewTokens("secret-b", "dev")
	require.NoError(t, err)

	token, err := a.Sign("user-1", "", "")
	require.NoError(t, err)

	_, err = b.Verify(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyRejectsExpired(t *testing.T) {
	issued := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	tokens, err := NewTokens("secret", "dev")
	require.NoError(t, err)

	token, err := tokens.WithClock(func() time.Time { return issued }).Sign("user-1", "", "")
	require.NoError(t, err)

	later := tokens.WithClock(func() time.Time { return issued.Add(48 * time.Hour) })
	_, err = later.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens, err := NewTokens("", "dev")
	require.NoError(t, err)
	_, err = tokens.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestProductionRequiresSecret(t *testing.T) {
	_, err := NewTokens(" ", "production")
	assert.Error(t, err)
}

func TestSignRequiresSubject(t *testing.T) {
	tokens, err := NewTokens("secret", "dev")
	require.NoError(t, err)
	_, err = tokens.Sign("", "", "")
	assert.Error(t, err)
}
