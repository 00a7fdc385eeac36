package sqlite

import (
	"context"

	"github.com/aussiebroadwan/barkeep/internal/accounts/domain"
)

type accountsRepo struct {
	db querier
}

const accountColumns = `id, username, email, password_hash, created_at, updated_at`

func (r *accountsRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE username = ?`, username)
	return scanAccount(row)
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	now := utcNow()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, username, email, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Username, a.Email, a.PasswordHash, now, now)
	return mapConstraint(err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}
