package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:kvstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_GetMissingReturnsNil(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	v, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, "users", []byte(`[]`)))
	v, err := s.Get(ctx, "users")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), v)

	require.NoError(t, s.Set(ctx, "users", []byte(`[1]`)))
	v, err = s.Get(ctx, "users")
	require.NoError(t, err)
	require.Equal(t, []byte(`[1]`), v)
}

func TestSQLiteStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, "currentUser", []byte(`"alice"`)))
	require.NoError(t, s.Delete(ctx, "currentUser"))

	v, err := s.Get(ctx, "currentUser")
	require.NoError(t, err)
	require.Nil(t, v)

	// Deleting an absent key is a no-op.
	require.NoError(t, s.Delete(ctx, "currentUser"))
}

func TestSQLiteStore_Clear(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewSQLiteStore(db)

	require.NoError(t, s.Set(ctx, "a", []byte(`1`)))
	require.NoError(t, s.Set(ctx, "b", []byte(`2`)))
	require.NoError(t, s.Clear(ctx))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&n))
	require.Equal(t, 0, n)
}

func TestMemoryStore_Basics(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	v, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, s.Set(ctx, "k", []byte(`"v"`)))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte(`"v"`), v)

	// The store keeps its own copy.
	v[0] = 'x'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte(`"v"`), again)

	require.NoError(t, s.Delete(ctx, "k"))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, s.Set(ctx, "a", []byte(`1`)))
	require.NoError(t, s.Clear(ctx))
	v, err = s.Get(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, v)
}
