// Package sqlite implements the chatsdk TokenStore contract on top of a
// SQLite database. The session token lives in a single-row table; Save
// upserts that row.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"github.com/harborchat/harbor/pkg/chatsdk"
)

// The table holds at most one row; id is pinned to 1.
const sessionTokenID = 1

type Store struct {
	db *sql.DB
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// The CLI may race a concurrent invocation on the same database file.
	if _, err := db.ExecContext(context.Background(), `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Get returns the stored token, or chatsdk.ErrNoToken when the table is
// empty.
func (s *Store) Get(ctx context.Context) (chatsdk.Token, error) {
	const query = `SELECT user_id, auth_token FROM session_tokens WHERE id = ?`

	var token chatsdk.Token
	err := s.db.QueryRowContext(ctx, query, sessionTokenID).
		Scan(&token.UserID, &token.AuthToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return chatsdk.Token{}, chatsdk.ErrNoToken
		}
		return chatsdk.Token{}, err
	}

	return token, nil
}

// Save upserts the token row, replacing any previously stored token.
func (s *Store) Save(ctx context.Context, token chatsdk.Token) error {
	const query = `
		INSERT INTO session_tokens (id, user_id, auth_token, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id    = excluded.user_id,
			auth_token = excluded.auth_token,
			updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		sessionTokenID, token.UserID, token.AuthToken, time.Now().UTC())
	return err
}
