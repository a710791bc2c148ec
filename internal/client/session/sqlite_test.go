package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  expires_at INTEGER NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&n))
	return n
}

func TestTokenRoundTrip(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	ctx := context.Background()
	require.NoError(t, s.SetToken(ctx, "T", TokenTTL))

	got, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "T", got)

	// Still present one hour before the deadline.
	s.now = func() time.Time { return base.Add(TokenTTL - time.Hour) }
	got, err = s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "T", got)
}

func TestTokenExpiry(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	ctx := context.Background()
	require.NoError(t, s.SetToken(ctx, "T", TokenTTL))

	// At the deadline the value must never be observed as present,
	// and the stale row is removed on the way out.
	s.now = func() time.Time { return base.Add(TokenTTL) }
	got, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "", got)
	require.Equal(t, 0, countRows(t, db))
}

func TestTokenAbsent(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)

	got, err := s.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestPendingEmail(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	ctx := context.Background()
	require.NoError(t, s.SetPendingEmail(ctx, "a@b.com", PendingEmailTTL))

	got, err := s.PendingEmail(ctx)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", got)

	s.now = func() time.Time { return base.Add(PendingEmailTTL + time.Second) }
	got, err = s.PendingEmail(ctx)
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestClearPendingEmail(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.SetPendingEmail(ctx, "a@b.com", PendingEmailTTL))
	require.NoError(t, s.ClearPendingEmail(ctx))

	got, err := s.PendingEmail(ctx)
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestClearRemovesBothKeys(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "T", TokenTTL))
	require.NoError(t, s.SetPendingEmail(ctx, "a@b.com", PendingEmailTTL))

	require.NoError(t, s.Clear(ctx))
	require.Equal(t, 0, countRows(t, db))
}

func TestSetTokenOverwrites(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "old", TokenTTL))
	require.NoError(t, s.SetToken(ctx, "new", TokenTTL))

	got, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", got)
	require.Equal(t, 1, countRows(t, db))
}
