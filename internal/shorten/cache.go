package shorten

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Cache persists long URL -> short URL mappings between runs so repeated
// generation of the same parts list does not hammer the shortener. All
// methods are nil-receiver safe and behave as an empty cache.
type Cache struct {
	sqlDB *sql.DB
}

// OpenCache opens (creating if needed) a SQLite-backed short URL cache.
func OpenCache(path string) (*Cache, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("cache path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open short url cache: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping short url cache: %w", err)
	}
	if _, err := sqlDB.Exec(
		`CREATE TABLE IF NOT EXISTS short_urls (
		    long_url TEXT PRIMARY KEY,
		    short_url TEXT NOT NULL,
		    created_at INTEGER NOT NULL
		 )`,
	); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create short url table: %w", err)
	}
	return &Cache{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (c *Cache) Close() error {
	if c == nil || c.sqlDB == nil {
		return nil
	}
	return c.sqlDB.Close()
}

// Get looks up a cached short URL for longURL.
func (c *Cache) Get(ctx context.Context, longURL string) (string, bool, error) {
	if c == nil || c.sqlDB == nil {
		return "", false, nil
	}
	var short string
	err := c.sqlDB.QueryRowContext(
		ctx,
		`SELECT short_url FROM short_urls WHERE long_url = ?`,
		longURL,
	).Scan(&short)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get short url: %w", err)
	}
	return short, true, nil
}

// Put upserts a long URL -> short URL mapping.
func (c *Cache) Put(ctx context.Context, longURL, shortURL string) error {
	if c == nil || c.sqlDB == nil {
		return nil
	}
	_, err := c.sqlDB.ExecContext(
		ctx,
		`INSERT INTO short_urls (long_url, short_url, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(long_url) DO UPDATE SET
		    short_url = excluded.short_url`,
		longURL,
		shortURL,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put short url: %w", err)
	}
	return nil
}
