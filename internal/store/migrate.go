package store

import (
	"context"
	"fmt"
)

// sqliteSchema and mysqlSchema create every table the application uses.
// Statements are idempotent; Migrate runs them on every Open.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		streak INTEGER NOT NULL DEFAULT 0,
		last_test_date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		question TEXT NOT NULL,
		choices TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		explanation TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		UNIQUE(user_id, question)
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expires_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS sessions_expires_at ON sessions(expires_at)`,
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at INTEGER NOT NULL,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL,
		input_tokens INTEGER NOT NULL,
		output_tokens INTEGER NOT NULL,
		latency_ms INTEGER NOT NULL,
		success BOOLEAN NOT NULL,
		error_message TEXT NOT NULL,
		request_body TEXT NOT NULL,
		response_body TEXT NOT NULL
	)`,
}

// MySQL cannot index unbounded TEXT, so the favorite question key is a
// bounded VARCHAR.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(191) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		streak INT NOT NULL DEFAULT 0,
		last_test_date VARCHAR(10) NULL
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		question VARCHAR(700) NOT NULL,
		choices TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		explanation TEXT NOT NULL,
		created_at BIGINT NOT NULL,
		UNIQUE KEY favorites_user_question (user_id, question),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id VARCHAR(64) PRIMARY KEY,
		data MEDIUMBLOB NOT NULL,
		expires_at BIGINT NOT NULL,
		INDEX sessions_expires_at (expires_at)
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		created_at BIGINT NOT NULL,
		provider VARCHAR(64) NOT NULL,
		model VARCHAR(191) NOT NULL,
		purpose VARCHAR(64) NOT NULL,
		input_tokens INT NOT NULL,
		output_tokens INT NOT NULL,
		latency_ms BIGINT NOT NULL,
		success BOOLEAN NOT NULL,
		error_message TEXT NOT NULL,
		request_body MEDIUMTEXT NOT NULL,
		response_body MEDIUMTEXT NOT NULL
	) DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates any missing tables for the store's dialect.
func (s *Store) Migrate(ctx context.Context) error {
	stmts := sqliteSchema
	if isMySQL(s.db) {
		stmts = mysqlSchema
	}
	for i, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
