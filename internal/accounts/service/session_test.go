package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/barkeep/internal/accounts/domain"
	"github.com/aussiebroadwan/barkeep/internal/accounts/service"
	"github.com/aussiebroadwan/barkeep/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSessionService(st *fakeStore) *service.SessionService {
	return &service.SessionService{
		Store:  st,
		Signer: &jwtx.SessionSigner{Secret: []byte("test-secret"), Issuer: "barkeep-test"},
	}
}

func testAccount() domain.Account {
	return domain.Account{ID: "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", Username: "alice123"}
}

func TestIssueBuildsFreshPayload(t *testing.T) {
	t.Parallel()

	svc := newSessionService(newFakeStore())
	before := time.Now().UTC()
	session := svc.Issue(testAccount())

	require.NotEmpty(t, session.ID)
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", session.AccountID)
	require.Equal(t, "alice123", session.Username)
	require.WithinDuration(t, before.Add(service.DefaultSessionTTL), session.ExpiresAt, 2*time.Second)

	// Each issuance is a distinct session
	require.NotEqual(t, session.ID, svc.Issue(testAccount()).ID)
}

func TestIssueHonoursConfiguredTTL(t *testing.T) {
	t.Parallel()

	svc := newSessionService(newFakeStore())
	svc.TTL = time.Hour

	session := svc.Issue(testAccount())
	require.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 2*time.Second)
}

func TestStartResolveEnd(t *testing.T) {
	t.Parallel()

	st := newFakeStore()
	svc := newSessionService(st)
	ctx := context.Background()

	session, token, err := svc.Start(ctx, testAccount())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, session.ID, resolved.ID)
	require.Equal(t, "alice123", resolved.Username)

	require.NoError(t, svc.End(ctx, session.ID))

	// The token still verifies cryptographically but the session is gone.
	_, err = svc.Resolve(ctx, token)
	require.ErrorIs(t, err, service.ErrNoSession)
}

func TestResolveRejectsForgedToken(t *testing.T) {
	t.Parallel()

	st := newFakeStore()
	svc := newSessionService(st)
	ctx := context.Background()

	_, _, err := svc.Start(ctx, testAccount())
	require.NoError(t, err)

	forger := &jwtx.SessionSigner{Secret: []byte("other-secret"), Issuer: "barkeep-test"}
	forged, err := forger.Sign("some-id", "acct", "mallory1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, forged)
	require.ErrorIs(t, err, service.ErrNoSession)
}

func TestResolveRejectsMalformedSessionID(t *testing.T) {
	t.Parallel()

	st := newFakeStore()
	svc := newSessionService(st)
	ctx := context.Background()

	// Correctly signed, but the sid claim is not a ULID so it cannot
	// name any session.
	token, err := svc.Signer.Sign("not-a-ulid", "acct", "mallory1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, token)
	require.ErrorIs(t, err, service.ErrNoSession)
}

func TestResolveExpiredSession(t *testing.T) {
	t.Parallel()

	st := newFakeStore()
	svc := newSessionService(st)
	svc.TTL = time.Millisecond
	ctx := context.Background()

	_, token, err := svc.Start(ctx, testAccount())
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, err = svc.Resolve(ctx, token)
	require.ErrorIs(t, err, service.ErrNoSession)
}
