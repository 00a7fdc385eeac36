package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/barkeep/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable, and so services can take exactly the capability they need.
type Store interface {
	Accounts() Accounts
	Sessions() Sessions

	ApplyMigrations() error

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store scoped to a single transaction.
type Tx interface {
	Accounts() Accounts
	Sessions() Sessions
}

// Accounts is the minimal lookup/insert capability the credential pipeline
// consumes. Lookups are by exact (already normalized) value.
type Accounts interface {
	// GetByID returns an account by id.
	GetByID(ctx context.Context, id string) (domain.Account, error)

	// GetByUsername is used during login and the registration uniqueness check.
	GetByUsername(ctx context.Context, username string) (domain.Account, error)

	// GetByEmail is used during the registration uniqueness check.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// Create inserts a new account (id is provided by the app via ULID).
	// Returns ErrAlreadyExists if the username or email is already taken;
	// the schema's UNIQUE constraints make this the backstop for the race
	// between the pre-insert uniqueness checks and the insert itself.
	Create(ctx context.Context, a domain.Account) error
}

// Sessions is the session sink: it persists issued session payloads and
// owns their lifecycle (lookup, destruction, expiry sweep).
type Sessions interface {
	// Create stores a freshly issued session.
	Create(ctx context.Context, s domain.Session) error

	// GetByID returns a session by id. Expired sessions are not returned.
	GetByID(ctx context.Context, id string) (domain.Session, error)

	// Delete destroys a session (logout).
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes all expired sessions (housekeeping).
	DeleteExpired(ctx context.Context) error
}
