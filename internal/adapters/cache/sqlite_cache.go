package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mikey/email-triage/internal/core"
	"go.uber.org/zap"
)

// SQLiteCache is a SQLite implementation of the CacheRepository interface
type SQLiteCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewSQLiteCache creates a new SQLite result cache
func NewSQLiteCache(dbPath string, logger *zap.Logger, cleanupFreq time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS triage_cache (
			text_hash TEXT PRIMARY KEY,
			category TEXT,
			confidence REAL,
			suggested_response TEXT,
			intent TEXT,
			analyzed_at TIMESTAMP,
			expires_at TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	// Index on expires_at for faster cleanup
	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_triage_expires_at ON triage_cache(expires_at)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	cache := &SQLiteCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	go cache.startCleanupTask()

	return cache, nil
}

// Get retrieves a cached entry for a text hash
func (c *SQLiteCache) Get(ctx context.Context, textHash string) (*core.CacheEntry, error) {
	var category, suggested, intent string
	var confidence float64
	var analyzedAt, expiresAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT category, confidence, suggested_response, intent, analyzed_at, expires_at
		FROM triage_cache
		WHERE text_hash = ? AND expires_at > ?
	`, textHash, time.Now().Format(time.RFC3339)).Scan(&category, &confidence, &suggested, &intent, &analyzedAt, &expiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}

	entry := &core.CacheEntry{
		TextHash:          textHash,
		Category:          core.Category(category),
		Confidence:        confidence,
		SuggestedResponse: suggested,
		Intent:            intent,
	}
	if entry.AnalyzedAt, err = time.Parse(time.RFC3339, analyzedAt); err != nil {
		return nil, fmt.Errorf("failed to parse analyzed_at timestamp: %w", err)
	}
	if entry.ExpiresAt, err = time.Parse(time.RFC3339, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to parse expires_at timestamp: %w", err)
	}

	return entry, nil
}

// Set stores a cache entry
func (c *SQLiteCache) Set(ctx context.Context, entry *core.CacheEntry) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO triage_cache
			(text_hash, category, confidence, suggested_response, intent, analyzed_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.TextHash, string(entry.Category), entry.Confidence, entry.SuggestedResponse, entry.Intent,
		entry.AnalyzedAt.Format(time.RFC3339), entry.ExpiresAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert cache entry: %w", err)
	}
	return nil
}

// Delete removes a cache entry
func (c *SQLiteCache) Delete(ctx context.Context, textHash string) error {
	_, err := c.db.ExecContext(ctx, `
		DELETE FROM triage_cache WHERE text_hash = ?
	`, textHash)
	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Cleanup removes expired entries
func (c *SQLiteCache) Cleanup(ctx context.Context) error {
	res, err := c.db.ExecContext(ctx, `
		DELETE FROM triage_cache WHERE expires_at <= ?
	`, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to clean up cache: %w", err)
	}

	if expired, err := res.RowsAffected(); err == nil {
		c.logger.Debug("cleaned up expired cache entries", zap.Int64("expired_count", expired))
	}
	return nil
}

// startCleanupTask starts a background task to clean up expired entries
func (c *SQLiteCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("failed to clean up cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task and closes the database
func (c *SQLiteCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("failed to close SQLite database", zap.Error(err))
	}
}
