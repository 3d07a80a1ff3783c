package jwtauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", "surfshop", time.Hour)

	token, expiresAt, err := svc.Generate("user-1", "admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Username)
}

func TestTokenService_Rejects(t *testing.T) {
	svc := NewTokenService("secret", "surfshop", time.Hour)
	token, _, err := svc.Generate("user-1", "admin")
	require.NoError(t, err)

	_, err = NewTokenService("other", "surfshop", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenService("secret", "someone-else", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", "surfshop", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.Generate("user-1", "admin")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_EmptySubject(t *testing.T) {
	_, _, err := NewTokenService("secret", "", 0).Generate("", "x")
	assert.ErrorIs(t, err, ErrEmptySubject)
}
