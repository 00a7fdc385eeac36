package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/barkeep/internal/accounts/domain"
	"github.com/aussiebroadwan/barkeep/internal/accounts/store"
	"github.com/aussiebroadwan/barkeep/pkg/cryptox"
	"github.com/aussiebroadwan/barkeep/pkg/idx"
	"github.com/aussiebroadwan/barkeep/pkg/slogx"
)

var (
	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrStoreUnavailable means the account store could not be reached.
	// Safe to retry at the caller's discretion.
	ErrStoreUnavailable = errors.New("account store unavailable, try again later")

	// ErrAccountExists means the insert lost the race against a concurrent
	// registration that passed the uniqueness checks moments earlier.
	ErrAccountExists = errors.New("account already exists")
)

// dummyPasswordHash is compared against when a login names an account that
// doesn't exist, so missing-user and wrong-password take similar time.
// This is NOT a real credential.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AccountService runs the credential lifecycle: registration and login.
// The store is injected so tests can substitute doubles.
type AccountService struct {
	Store store.Store

	// Cost is the bcrypt work factor. Higher is stronger against offline
	// guessing but slower to verify. Zero falls back to the default (10).
	Cost int
}

// Register runs the full registration pipeline: normalize, validate,
// hash, persist. Validation problems come back as ValidationErrors with
// every applicable message in rule order; all other failures short-circuit.
func (s *AccountService) Register(ctx context.Context, in domain.AccountInput) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	normalized := Normalize(in)

	violations, err := Validate(ctx, normalized, s.Store.Accounts())
	if err != nil {
		log.Error("registration validation aborted", slog.Any("error", err))
		return domain.Account{}, err
	}
	if len(violations) > 0 {
		return domain.Account{}, violations
	}

	hash, err := cryptox.HashPassword(normalized.Password, s.Cost)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}

	account := domain.Account{
		ID:           idx.New().String(),
		Username:     normalized.Username,
		Email:        normalized.Email,
		PasswordHash: hash,
	}

	if err := s.Store.Accounts().Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Race-lost uniqueness: another registration slipped in between
			// the validate lookups and this insert.
			log.Warn("registration lost uniqueness race",
				slog.String("username", account.Username),
			)
			return domain.Account{}, ErrAccountExists
		}
		log.Error("failed to create account", slog.Any("error", err))
		return domain.Account{}, err
	}

	log.Info("account registered",
		slog.String("account_id", account.ID),
		slog.String("username", account.Username),
	)

	return account, nil
}

// Login authenticates a returning user. An unknown username and a wrong
// password are indistinguishable to the caller; a store transport failure
// is not a credential problem and surfaces as ErrStoreUnavailable.
func (s *AccountService) Login(ctx context.Context, in domain.AccountInput) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	normalized := Normalize(in)

	account, err := s.Store.Accounts().GetByUsername(ctx, normalized.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a comparison anyway to keep missing-user timing close
			// to wrong-password timing.
			_ = cryptox.VerifyPassword(normalized.Password, dummyPasswordHash)
			return domain.Account{}, ErrInvalidCredentials
		}
		log.Error("account lookup failed during login", slog.Any("error", err))
		return domain.Account{}, ErrStoreUnavailable
	}

	if err := cryptox.VerifyPassword(normalized.Password, account.PasswordHash); err != nil {
		return domain.Account{}, ErrInvalidCredentials
	}

	log.Debug("login succeeded", slog.String("account_id", account.ID))
	return account, nil
}
