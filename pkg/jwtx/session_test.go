package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/barkeep/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSigner(secret string) *jwtx.SessionSigner {
	return &jwtx.SessionSigner{Secret: []byte(secret), Issuer: "barkeep-test"}
}

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	signer := newSigner("test-secret")
	expires := time.Now().Add(24 * time.Hour)

	raw, err := signer.Sign("sess-1", "acct-1", "alice123", expires)
	require.NoError(t, err)

	claims, err := signer.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "sess-1", claims.SessionID)
	require.Equal(t, "acct-1", claims.Subject)
	require.Equal(t, "alice123", claims.Username)
	require.WithinDuration(t, expires, claims.ExpiresAt.Time, time.Second)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := newSigner("secret-a").Sign("sess-1", "acct-1", "alice123", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = newSigner("secret-b").Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer := newSigner("test-secret")
	raw, err := signer.Sign("sess-1", "acct-1", "alice123", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	other := &jwtx.SessionSigner{Secret: []byte("test-secret"), Issuer: "someone-else"}
	raw, err := other.Sign("sess-1", "acct-1", "alice123", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = newSigner("test-secret").Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := newSigner("test-secret").Verify("not.a.token")
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}
