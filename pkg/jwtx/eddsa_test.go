package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	kp, err := NewKeypair("murmur")
	require.NoError(t, err)

	now := time.Now().UTC()
	claims := NewSessionClaims("user-123", "alice", "murmur", time.Hour, now)

	token, err := kp.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := kp.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	t.Parallel()

	kp1, err := NewKeypair("murmur")
	require.NoError(t, err)
	kp2, err := NewKeypair("murmur")
	require.NoError(t, err)

	token, err := kp1.Sign(NewSessionClaims("u", "n", "murmur", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = kp2.Verify(token)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	kp, err := NewKeypair("murmur")
	require.NoError(t, err)

	token, err := kp.Sign(NewSessionClaims("u", "n", "someone-else", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = kp.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestValidateExpiry(t *testing.T) {
	t.Parallel()

	expired := NewSessionClaims("u", "n", "murmur", -time.Minute, time.Now().UTC().Add(-time.Hour))
	require.ErrorIs(t, expired.ValidateExpiry(), ErrExpired)

	future := NewSessionClaims("u", "n", "murmur", time.Hour, time.Now().UTC().Add(time.Hour))
	require.ErrorIs(t, future.ValidateExpiry(), ErrNotYetValid)
}
