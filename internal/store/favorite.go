package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// favoriteRow is the table shape; choices are stored as a JSON array.
type favoriteRow struct {
	ID            int64  `db:"id"`
	UserID        int64  `db:"user_id"`
	Question      string `db:"question"`
	Choices       string `db:"choices"`
	CorrectAnswer string `db:"correct_answer"`
	Explanation   string `db:"explanation"`
	CreatedAt     int64  `db:"created_at"`
}

func (row favoriteRow) toFavorite() (Favorite, error) {
	var choices []string
	if err := json.Unmarshal([]byte(row.Choices), &choices); err != nil {
		return Favorite{}, fmt.Errorf("decode choices of favorite %d: %w", row.ID, err)
	}
	return Favorite{
		ID:            row.ID,
		UserID:        row.UserID,
		Question:      row.Question,
		Choices:       choices,
		CorrectAnswer: row.CorrectAnswer,
		Explanation:   row.Explanation,
		CreatedAt:     time.UnixMilli(row.CreatedAt).UTC(),
	}, nil
}

// favoriteRepo implements FavoriteRepo with sqlx.
type favoriteRepo struct {
	db *sqlx.DB
}

func (r *favoriteRepo) Toggle(ctx context.Context, fav Favorite) (bool, error) {
	choices, err := json.Marshal(fav.Choices)
	if err != nil {
		return false, fmt.Errorf("encode choices: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND question = ?`,
		fav.UserID, fav.Question)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}

	added := removed == 0
	if added {
		createdAt := fav.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO favorites (user_id, question, choices, correct_answer, explanation, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			fav.UserID, fav.Question, string(choices), fav.CorrectAnswer, fav.Explanation, createdAt.UnixMilli())
		if err != nil {
			return false, fmt.Errorf("insert favorite: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return added, nil
}

func (r *favoriteRepo) List(ctx context.Context, userID int64) ([]Favorite, error) {
	var rows []favoriteRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, user_id, question, choices, correct_answer, explanation, created_at
		FROM favorites WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	favs := make([]Favorite, 0, len(rows))
	for _, row := range rows {
		f, err := row.toFavorite()
		if err != nil {
			return nil, err
		}
		favs = append(favs, f)
	}
	return favs, nil
}

func (r *favoriteRepo) Questions(ctx context.Context, userID int64) (map[string]bool, error) {
	var questions []string
	err := r.db.SelectContext(ctx, &questions, `SELECT question FROM favorites WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite questions: %w", err)
	}

	set := make(map[string]bool, len(questions))
	for _, q := range questions {
		set[q] = true
	}
	return set, nil
}
