// Package sqlcache is a dmgen.Cache backed by a SQL table. It runs on
// SQLite, PostgreSQL (lib/pq or pgx) and MySQL.
//
//	cache, err := sqlcache.Open(ctx, "sqlite", "file:cache.db")
//	client, err := dms.NewClient(dms.WithCache(cache, 5*time.Minute), ...)
package sqlcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ariga.io/atlas/sql/migrate"
	"ariga.io/atlas/sql/mysql"
	"ariga.io/atlas/sql/postgres"
	"ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlite"

	"github.com/powerops/dmgen"
)

// Dialects.
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
	MySQL    = "mysql"
)

// DefaultTable is the default table name.
const DefaultTable = "dmgen_cache"

// dialectOf maps a database/sql driver name to its dialect.
func dialectOf(driver string) (string, error) {
	switch driver {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "pgx":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	}
	return "", fmt.Errorf("sqlcache: unsupported driver %q", driver)
}

// Cache stores values in one table with columns cache_key, cache_value
// and expires_at (epoch ms, 0 for no expiry).
type Cache struct {
	db      *sql.DB
	dialect string
	table   string
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTable sets the table name.
func WithTable(name string) Option {
	return func(c *Cache) {
		c.table = name
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = l
	}
}

// Open opens the database, creates the cache table if needed and returns
// the cache. driver is a database/sql driver name: sqlite, postgres, pgx
// or mysql.
func Open(ctx context.Context, driver, dsn string, opts ...Option) (*Cache, error) {
	dialect, err := dialectOf(driver)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlcache: open %s: %w", driver, err)
	}
	c := New(db, dialect, opts...)
	if err := c.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// New wraps an open database. It does not create the table; call Migrate
// for that.
func New(db *sql.DB, dialect string, opts ...Option) *Cache {
	c := &Cache{
		db:      db,
		dialect: dialect,
		table:   DefaultTable,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Table returns the table definition of the cache for the dialect.
func (c *Cache) Table() *schema.Table {
	blob := "blob"
	switch c.dialect {
	case Postgres:
		blob = "bytea"
	case MySQL:
		blob = "longblob"
	}
	key := schema.NewStringColumn("cache_key", "varchar", schema.StringSize(255))
	return schema.NewTable(c.table).
		AddColumns(
			key,
			schema.NewBinaryColumn("cache_value", blob),
			schema.NewIntColumn("expires_at", "bigint"),
		).
		SetPrimaryKey(schema.NewPrimaryKey(key))
}

// Migrate creates the cache table if it does not exist.
func (c *Cache) Migrate(ctx context.Context) error {
	var (
		drv migrate.Driver
		err error
	)
	switch c.dialect {
	case SQLite:
		drv, err = sqlite.Open(c.db)
	case Postgres:
		drv, err = postgres.Open(c.db)
	case MySQL:
		drv, err = mysql.Open(c.db)
	default:
		err = fmt.Errorf("unsupported dialect %q", c.dialect)
	}
	if err != nil {
		return fmt.Errorf("sqlcache: open migration driver: %w", err)
	}
	current, err := drv.InspectSchema(ctx, "", &schema.InspectOptions{Tables: []string{c.table}})
	if err != nil {
		return fmt.Errorf("sqlcache: inspect schema: %w", err)
	}
	if _, ok := current.Table(c.table); ok {
		c.logger.DebugContext(ctx, "cache table exists", "table", c.table, "dialect", c.dialect)
		return nil
	}
	if err := drv.ApplyChanges(ctx, []schema.Change{&schema.AddTable{T: c.Table()}}); err != nil {
		return fmt.Errorf("sqlcache: create table %s: %w", c.table, err)
	}
	c.logger.DebugContext(ctx, "cache table created", "table", c.table, "dialect", c.dialect)
	return nil
}

// rebind rewrites ? placeholders to $n for PostgreSQL.
func (c *Cache) rebind(query string) string {
	if c.dialect != Postgres {
		return query
	}
	var (
		sb strings.Builder
		n  int
	)
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (c *Cache) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	query = c.rebind(query)
	c.logger.DebugContext(ctx, "sqlcache exec", "query", query)
	return c.db.ExecContext(ctx, query, args...)
}

// Get retrieves a value. Missing and expired entries return nil, nil.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	var (
		value     []byte
		expiresAt int64
	)
	query := c.rebind("SELECT cache_value, expires_at FROM " + c.table + " WHERE cache_key = ?")
	err := c.db.QueryRowContext(ctx, query, key).Scan(&value, &expiresAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("sqlcache: get: %w", err)
	case expiresAt > 0 && expiresAt <= c.now().UnixMilli():
		return nil, nil
	}
	return value, nil
}

// Set stores a value, replacing any previous one. A zero ttl never expires.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = c.now().Add(ttl).UnixMilli()
	}
	query := "INSERT INTO " + c.table + " (cache_key, cache_value, expires_at) VALUES (?, ?, ?) "
	if c.dialect == MySQL {
		query += "ON DUPLICATE KEY UPDATE cache_value = VALUES(cache_value), expires_at = VALUES(expires_at)"
	} else {
		query += "ON CONFLICT (cache_key) DO UPDATE SET cache_value = excluded.cache_value, expires_at = excluded.expires_at"
	}
	if _, err := c.exec(ctx, query, key, value, expiresAt); err != nil {
		return fmt.Errorf("sqlcache: set: %w", err)
	}
	return nil
}

// Delete removes a value.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if _, err := c.exec(ctx, "DELETE FROM "+c.table+" WHERE cache_key = ?", key); err != nil {
		return fmt.Errorf("sqlcache: delete: %w", err)
	}
	return nil
}

// likeEscaper escapes LIKE wildcards with '!'.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// DeletePrefix removes all values whose key starts with prefix.
func (c *Cache) DeletePrefix(ctx context.Context, prefix string) error {
	pattern := likeEscaper.Replace(prefix) + "%"
	if _, err := c.exec(ctx, "DELETE FROM "+c.table+" WHERE cache_key LIKE ? ESCAPE '!'", pattern); err != nil {
		return fmt.Errorf("sqlcache: delete prefix: %w", err)
	}
	return nil
}

// Clear removes all values.
func (c *Cache) Clear(ctx context.Context) error {
	if _, err := c.exec(ctx, "DELETE FROM "+c.table); err != nil {
		return fmt.Errorf("sqlcache: clear: %w", err)
	}
	return nil
}

// Prune deletes expired entries and returns how many were removed.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	res, err := c.exec(ctx, "DELETE FROM "+c.table+" WHERE expires_at > 0 AND expires_at <= ?", c.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("sqlcache: prune: %w", err)
	}
	return res.RowsAffected()
}

var _ dmgen.Cache = (*Cache)(nil)
