package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := NewTokenManager("super-secret", "movieflix-api", time.Hour)

	token, err := tm.Issue("64f1b2c3d4e5f60718293a4b", "alice01")
	require.NoError(t, err)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1b2c3d4e5f60718293a4b", claims.Subject)
	assert.Equal(t, "alice01", claims.Username)
	assert.Equal(t, "movieflix-api", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("super-secret", "movieflix-api", time.Hour)
	// Issue in the past so the token is already expired.
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := tm.Issue("64f1b2c3d4e5f60718293a4b", "alice01")
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	tm := NewTokenManager("super-secret", "movieflix-api", time.Hour)

	token, err := tm.Issue("64f1b2c3d4e5f60718293a4b", "alice01")
	require.NoError(t, err)

	// Flip the first character of the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tm.Parse(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("right-secret", "movieflix-api", time.Hour)
	verifier := NewTokenManager("wrong-secret", "movieflix-api", time.Hour)

	token, err := issuer.Issue("64f1b2c3d4e5f60718293a4b", "alice01")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager("super-secret", "movieflix-api", time.Hour)
	_, err := tm.Parse("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_PayloadOmitsPasswordHash(t *testing.T) {
	tm := NewTokenManager("super-secret", "movieflix-api", time.Hour)

	token, err := tm.Issue("64f1b2c3d4e5f60718293a4b", "alice01")
	require.NoError(t, err)

	// The payload segment is unencrypted base64; only minimal claims may
	// appear in it.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	assert.NotContains(t, parts[1], "password")
}
