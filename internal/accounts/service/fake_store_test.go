package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/aussiebroadwan/barkeep/internal/accounts/domain"
	"github.com/aussiebroadwan/barkeep/internal/accounts/store"
)

// fakeStore is an in-memory store.Store double for service tests.
type fakeStore struct {
	accounts fakeAccounts
	sessions fakeSessions
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: fakeAccounts{records: map[string]domain.Account{}},
		sessions: fakeSessions{records: map[string]domain.Session{}},
	}
}

func (f *fakeStore) Accounts() store.Accounts { return &f.accounts }
func (f *fakeStore) Sessions() store.Sessions { return &f.sessions }
func (f *fakeStore) ApplyMigrations() error   { return nil }
func (f *fakeStore) Close() error             { return nil }

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func (f *fakeStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return fn(f)
}

type fakeAccounts struct {
	mu      sync.Mutex
	records map[string]domain.Account // keyed by id

	// lookupErr makes every lookup fail, simulating a store outage.
	lookupErr error

	// hideFromLookups makes lookups miss while Create still enforces
	// uniqueness, modelling the gap between check and insert.
	hideFromLookups bool

	lookupCalls int
}

func (f *fakeAccounts) GetByID(ctx context.Context, id string) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.records[id]; ok {
		return a, nil
	}
	return domain.Account{}, store.ErrNotFound
}

func (f *fakeAccounts) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	return f.find(func(a domain.Account) bool { return a.Username == username })
}

func (f *fakeAccounts) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return f.find(func(a domain.Account) bool { return a.Email == email })
}

func (f *fakeAccounts) find(match func(domain.Account) bool) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lookupCalls++
	if f.lookupErr != nil {
		return domain.Account{}, f.lookupErr
	}
	if f.hideFromLookups {
		return domain.Account{}, store.ErrNotFound
	}
	for _, a := range f.records {
		if match(a) {
			return a, nil
		}
	}
	return domain.Account{}, store.ErrNotFound
}

func (f *fakeAccounts) Create(ctx context.Context, a domain.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.records {
		if existing.Username == a.Username || existing.Email == a.Email {
			return store.ErrAlreadyExists
		}
	}
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	f.records[a.ID] = a
	return nil
}

type fakeSessions struct {
	mu      sync.Mutex
	records map[string]domain.Session
}

func (f *fakeSessions) Create(ctx context.Context, s domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[s.ID] = s
	return nil
}

func (f *fakeSessions) GetByID(ctx context.Context, id string) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.records[id]
	if !ok || s.Expired(time.Now().UTC()) {
		return domain.Session{}, store.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessions) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, id)
	return nil
}

func (f *fakeSessions) DeleteExpired(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now().UTC()
	for id, s := range f.records {
		if s.Expired(now) {
			delete(f.records, id)
		}
	}
	return nil
}
