package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "nested", "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("Get missing key returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Put then Get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "ledger", []byte(`{"v":1}`)))

		got, err := store.Get(ctx, "ledger")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"v":1}`), got)
	})

	t.Run("Put replaces previous value", func(t *testing.T) {
		store.now = func() time.Time { return time.Unix(1700000000, 0) }
		t.Cleanup(func() { store.now = time.Now })

		require.NoError(t, store.Put(ctx, "ledger", []byte("first")))
		require.NoError(t, store.Put(ctx, "ledger", []byte("second")))

		got, err := store.Get(ctx, "ledger")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), got)

		var rows int
		var updatedAt int64
		require.NoError(t, store.db.QueryRow(`SELECT COUNT(*), MAX(updated_at) FROM kv WHERE key = ?`, "ledger").Scan(&rows, &updatedAt))
		assert.Equal(t, 1, rows)
		assert.Equal(t, int64(1700000000), updatedAt)
	})

	t.Run("Delete removes key and tolerates missing keys", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "tmp", []byte("x")))
		require.NoError(t, store.Delete(ctx, "tmp"))
		require.NoError(t, store.Delete(ctx, "tmp"))

		_, err := store.Get(ctx, "tmp")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestNew_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	first, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "ledger", []byte("saved")))
	require.NoError(t, first.Close())

	second, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, "ledger")
	require.NoError(t, err)
	assert.Equal(t, []byte("saved"), got)
}

func TestNew_CreatesParentDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "local", "ledger.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(filepath.Dir(dbPath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNew_MigrationFailure(t *testing.T) {
	orig := gooseUp
	gooseUp = func(ctx context.Context, db *sql.DB) error { return errors.New("boom") }
	t.Cleanup(func() { gooseUp = orig })

	_, err := New(context.Background(), filepath.Join(t.TempDir(), "ledger.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run migrations")
}

func TestSQLiteStore_DatabaseErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewWithDB(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM kv").WithArgs("ledger").WillReturnError(errors.New("disk I/O error"))
	_, err = store.Get(ctx, "ledger")
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to get key")

	mock.ExpectExec("INSERT INTO kv").WithArgs("ledger", []byte("x"), sqlmock.AnyArg()).WillReturnError(errors.New("database is locked"))
	err = store.Put(ctx, "ledger", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put key")

	mock.ExpectExec("DELETE FROM kv").WithArgs("ledger").WillReturnError(errors.New("readonly database"))
	err = store.Delete(ctx, "ledger")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete key")

	assert.NoError(t, mock.ExpectationsWereMet())
}
