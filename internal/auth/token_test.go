package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService([]byte("test-signing-key"), 12*time.Hour, nil)

	raw, err := ts.Issue("user-123", true)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := ts.Validate(raw)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UID)
	assert.True(t, claims.IsAdmin)
	require.NotNil(t, claims.ExpiresAt, "expiry claim must be embedded in the token")
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenValidateWrongKey(t *testing.T) {
	issuer := NewTokenService([]byte("key-one"), 12*time.Hour, nil)
	verifier := NewTokenService([]byte("key-two"), 12*time.Hour, nil)

	raw, err := issuer.Issue("user-123", false)
	require.NoError(t, err)

	_, err = verifier.Validate(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenValidateMalformed(t *testing.T) {
	ts := NewTokenService([]byte("test-signing-key"), 12*time.Hour, nil)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := ts.Validate(raw)
		assert.ErrorIs(t, err, ErrTokenInvalid, "raw=%q", raw)
	}
}

func TestTokenValidateExpired(t *testing.T) {
	ts := NewTokenService([]byte("test-signing-key"), -time.Minute, nil)

	raw, err := ts.Issue("user-123", false)
	require.NoError(t, err)

	_, err = ts.Validate(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
