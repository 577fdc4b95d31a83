package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, username, password, streak, COALESCE(last_test_date, '') AS last_test_date`

// userRepo implements UserRepo with sqlx.
type userRepo struct {
	db *sqlx.DB
}

func (r *userRepo) Create(ctx context.Context, username, passwordHash string) (*User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password, streak) VALUES (?, ?, 0)`,
		username, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("user %q: %w", username, ErrDuplicate)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("user id: %w", err)
	}

	return &User{ID: id, Username: username, Password: passwordHash}, nil
}

func (r *userRepo) ByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, notFound(err))
	}
	return &u, nil
}

func (r *userRepo) ByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, notFound(err))
	}
	return &u, nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.update(ctx, id, `UPDATE users SET password = ? WHERE id = ?`, passwordHash, id)
}

func (r *userRepo) UpdateStreak(ctx context.Context, id int64, streak int, lastTestDate string) error {
	return r.update(ctx, id, `UPDATE users SET streak = ?, last_test_date = ? WHERE id = ?`, streak, lastTestDate, id)
}

func (r *userRepo) update(ctx context.Context, id int64, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("update user %d: %w", id, ErrNotFound)
	}
	return nil
}
