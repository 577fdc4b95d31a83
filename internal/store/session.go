package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// sessionRepo implements SessionRepo with sqlx. Expiry is stored as unix
// seconds so both dialects compare it the same way.
type sessionRepo struct {
	db *sqlx.DB
}

func (r *sessionRepo) Load(ctx context.Context, id string, now time.Time) ([]byte, error) {
	var data []byte
	err := r.db.GetContext(ctx, &data,
		`SELECT data FROM sessions WHERE id = ? AND expires_at > ?`, id, now.Unix())
	if err != nil {
		return nil, fmt.Errorf("load session: %w", notFound(err))
	}
	return data, nil
}

func (r *sessionRepo) Save(ctx context.Context, id string, data []byte, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, data, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at`
	if isMySQL(r.db) {
		query = `INSERT INTO sessions (id, data, expires_at) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data), expires_at = VALUES(expires_at)`
	}

	if _, err := r.db.ExecContext(ctx, query, id, data, expiresAt.Unix()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Prune(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	return n, nil
}
