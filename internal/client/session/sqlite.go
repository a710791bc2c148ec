package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/mlevkov/authbox/internal/client/migrations"
	"github.com/mlevkov/authbox/internal/dbx"
)

// SQLiteStore is the Store implementation backed by a local sqlite database.
// Expiry is enforced on read: a row past its deadline is treated as absent
// and removed lazily.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// Open opens (or creates) the client database at dsn and brings the schema
// up to date.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string, ttl time.Duration) error {
	return s.set(ctx, s.db, KeyToken, token, ttl)
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, s.db, KeyToken)
}

func (s *SQLiteStore) ClearToken(ctx context.Context) error {
	return s.delete(ctx, s.db, KeyToken)
}

func (s *SQLiteStore) SetPendingEmail(ctx context.Context, email string, ttl time.Duration) error {
	return s.set(ctx, s.db, KeyPendingEmail, email, ttl)
}

func (s *SQLiteStore) PendingEmail(ctx context.Context) (string, error) {
	return s.get(ctx, s.db, KeyPendingEmail)
}

func (s *SQLiteStore) ClearPendingEmail(ctx context.Context) error {
	return s.delete(ctx, s.db, KeyPendingEmail)
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.delete(ctx, tx, KeyToken); err != nil {
			return err
		}
		return s.delete(ctx, tx, KeyPendingEmail)
	})
}

func (s *SQLiteStore) set(ctx context.Context, db dbx.DBTX, key string, value string, ttl time.Duration) error {
	expiresAt := s.now().Add(ttl).Unix()
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`, key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// get returns the live value for key, or "" when the key is missing or
// expired. An expired row is deleted on the way out.
func (s *SQLiteStore) get(ctx context.Context, db dbx.DBTX, key string) (string, error) {
	var (
		value     string
		expiresAt int64
	)
	err := db.QueryRowContext(ctx, `SELECT value, expires_at FROM session WHERE key = ?`, key).Scan(&value, &expiresAt)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}

	if s.now().Unix() >= expiresAt {
		if err := s.delete(ctx, db, key); err != nil {
			return "", err
		}
		return "", nil
	}
	return value, nil
}

func (s *SQLiteStore) delete(ctx context.Context, db dbx.DBTX, key string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", key, err)
	}
	return nil
}
