package sqlcache

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectOf(t *testing.T) {
	t.Parallel()

	for driver, want := range map[string]string{
		"sqlite":   SQLite,
		"postgres": Postgres,
		"pgx":      Postgres,
		"mysql":    MySQL,
	} {
		got, err := dialectOf(driver)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := dialectOf("oracle")
	require.Error(t, err)
}

func TestRebind(t *testing.T) {
	t.Parallel()

	pg := New(nil, Postgres)
	assert.Equal(t, "DELETE FROM t WHERE a = $1 AND b = $2", pg.rebind("DELETE FROM t WHERE a = ? AND b = ?"))
	lite := New(nil, SQLite)
	assert.Equal(t, "DELETE FROM t WHERE a = ?", lite.rebind("DELETE FROM t WHERE a = ?"))
}

func TestCacheMock(t *testing.T) {
	t.Parallel()

	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.UnixMilli(1_700_000_000_000)
	c := New(db, Postgres, WithTable("cache"))
	c.now = func() time.Time { return now }
	ctx := context.Background()

	mk.ExpectExec(regexp.QuoteMeta("INSERT INTO cache (cache_key, cache_value, expires_at) VALUES ($1, $2, $3) ON CONFLICT (cache_key) DO UPDATE")).
		WithArgs("k", []byte("v"), now.Add(time.Minute).UnixMilli()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	mk.ExpectQuery(regexp.QuoteMeta("SELECT cache_value, expires_at FROM cache WHERE cache_key = $1")).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"cache_value", "expires_at"}).AddRow([]byte("v"), now.Add(time.Minute).UnixMilli()))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	mk.ExpectQuery(regexp.QuoteMeta("SELECT cache_value, expires_at FROM cache WHERE cache_key = $1")).
		WithArgs("old").
		WillReturnRows(sqlmock.NewRows([]string{"cache_value", "expires_at"}).AddRow([]byte("v"), now.Add(-time.Second).UnixMilli()))
	v, err = c.Get(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, v)

	mk.ExpectQuery(regexp.QuoteMeta("SELECT cache_value, expires_at FROM cache WHERE cache_key = $1")).
		WithArgs("none").
		WillReturnRows(sqlmock.NewRows([]string{"cache_value", "expires_at"}))
	v, err = c.Get(ctx, "none")
	require.NoError(t, err)
	assert.Nil(t, v)

	mk.ExpectExec(regexp.QuoteMeta("DELETE FROM cache WHERE cache_key LIKE $1 ESCAPE '!'")).
		WithArgs("dms:my!_proj:%").
		WillReturnResult(sqlmock.NewResult(0, 3))
	require.NoError(t, c.DeletePrefix(ctx, "dms:my_proj:"))

	mk.ExpectExec(regexp.QuoteMeta("DELETE FROM cache WHERE expires_at > 0 AND expires_at <= $1")).
		WithArgs(now.UnixMilli()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	n, err := c.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, mk.ExpectationsWereMet())
}

func TestCacheMySQLUpsert(t *testing.T) {
	t.Parallel()

	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := New(db, MySQL)
	mk.ExpectExec(regexp.QuoteMeta("INSERT INTO dmgen_cache (cache_key, cache_value, expires_at) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE")).
		WithArgs("k", []byte("v"), int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), 0))
	require.NoError(t, mk.ExpectationsWereMet())
}

func TestCacheSQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "cache.db")
	c, err := Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	defer c.Close()

	// Migrating twice is a no-op.
	require.NoError(t, c.Migrate(ctx))

	require.NoError(t, c.Set(ctx, "dms:p:list:1", []byte("one"), 0))
	require.NoError(t, c.Set(ctx, "dms:p:list:1", []byte("uno"), 0))
	require.NoError(t, c.Set(ctx, "dms:p:query:2", []byte("two"), time.Hour))
	require.NoError(t, c.Set(ctx, "dms:q:list:3", []byte("three"), 0))

	v, err := c.Get(ctx, "dms:p:list:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("uno"), v)

	require.NoError(t, c.DeletePrefix(ctx, "dms:p:"))
	v, err = c.Get(ctx, "dms:p:query:2")
	require.NoError(t, err)
	assert.Nil(t, v)
	v, err = c.Get(ctx, "dms:q:list:3")
	require.NoError(t, err)
	assert.Equal(t, []byte("three"), v)

	require.NoError(t, c.Set(ctx, "short", []byte("x"), time.Millisecond))
	c.now = func() time.Time { return time.Now().Add(time.Hour) }
	n, err := c.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, c.Delete(ctx, "dms:q:list:3"))
	require.NoError(t, c.Clear(ctx))
}

func TestMigrateExistingTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "cache.db")
	first, err := Open(ctx, "sqlite", dsn, WithTable("reads"))
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, first.Close())

	second, err := Open(ctx, "sqlite", dsn, WithTable("reads"))
	require.NoError(t, err)
	defer second.Close()
	v, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v, "existing table is kept")
}
