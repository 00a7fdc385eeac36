package sqlite

import (
	"context"

	"github.com/aussiebroadwan/barkeep/internal/accounts/domain"
)

type sessionsRepo struct {
	db querier
}

func (r *sessionsRepo) Create(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, account_id, username, expires_at, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.AccountID, s.Username, s.ExpiresAt.UTC(), utcNow())
	return mapConstraint(err)
}

func (r *sessionsRepo) GetByID(ctx context.Context, id string) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, account_id, username, expires_at, created_at
		 FROM sessions
		 WHERE id = ? AND expires_at > ?`, id, utcNow())

	var s domain.Session
	err := row.Scan(&s.ID, &s.AccountID, &s.Username, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, utcNow())
	return err
}
