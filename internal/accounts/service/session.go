package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/barkeep/internal/accounts/domain"
	"github.com/aussiebroadwan/barkeep/internal/accounts/store"
	"github.com/aussiebroadwan/barkeep/pkg/cryptox"
	"github.com/aussiebroadwan/barkeep/pkg/idx"
	"github.com/aussiebroadwan/barkeep/pkg/jwtx"
	"github.com/aussiebroadwan/barkeep/pkg/slogx"
)

// DefaultSessionTTL is how long an issued session identity stays valid.
const DefaultSessionTTL = 24 * time.Hour

// ErrNoSession is returned when a presented session token names a session
// that no longer exists (logged out or swept after expiry).
var ErrNoSession = errors.New("no active session")

// SessionService issues session identities after a successful login or
// registration and manages their persisted lifecycle.
type SessionService struct {
	Store  store.Store
	Signer *jwtx.SessionSigner
	TTL    time.Duration
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL <= 0 {
		return DefaultSessionTTL
	}
	return s.TTL
}

// Issue constructs a fresh session payload for the account. Pure: no
// storage is touched and there is no failure path.
func (s *SessionService) Issue(account domain.Account) domain.Session {
	now := time.Now().UTC()
	return domain.Session{
		ID:        idx.New().String(),
		AccountID: account.ID,
		Username:  account.Username,
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
	}
}

// Start issues a session for the account, hands it to the session store and
// returns the payload along with the signed token the client presents on
// later requests.
func (s *SessionService) Start(ctx context.Context, account domain.Account) (domain.Session, string, error) {
	log := slogx.FromContext(ctx)

	session := s.Issue(account)
	if err := s.Store.Sessions().Create(ctx, session); err != nil {
		log.Error("failed to persist session", slog.Any("error", err))
		return domain.Session{}, "", err
	}

	token, err := s.Signer.Sign(session.ID, session.AccountID, session.Username, session.ExpiresAt)
	if err != nil {
		// Don't leave an orphaned row behind.
		_ = s.Store.Sessions().Delete(ctx, session.ID)
		log.Error("failed to sign session token", slog.Any("error", err))
		return domain.Session{}, "", err
	}

	// Fingerprint only: the raw token must never hit the logs.
	log.Debug("session started",
		slog.String("session_id", session.ID),
		slog.String("account_id", session.AccountID),
		slog.String("token_fingerprint", cryptox.FingerprintToken(token)),
	)
	return session, token, nil
}

// Resolve verifies a presented token and loads the live session it names.
// A bad signature, an expired token or a deleted session all come back as
// ErrNoSession.
func (s *SessionService) Resolve(ctx context.Context, token string) (domain.Session, error) {
	claims, err := s.Signer.Verify(token)
	if err != nil {
		return domain.Session{}, ErrNoSession
	}

	// A sid claim that isn't a well-formed ULID can't name a session,
	// so it never reaches the store.
	sid, err := idx.Parse(claims.SessionID)
	if err != nil {
		return domain.Session{}, ErrNoSession
	}

	session, err := s.Store.Sessions().GetByID(ctx, sid.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrNoSession
		}
		return domain.Session{}, err
	}
	return session, nil
}

// End destroys a session (logout). Ending an already-gone session is fine.
func (s *SessionService) End(ctx context.Context, sessionID string) error {
	return s.Store.Sessions().Delete(ctx, sessionID)
}
