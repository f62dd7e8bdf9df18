package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/mikey/email-triage/internal/core"
	"go.uber.org/zap"
)

// MySQLCache is a MySQL implementation of the CacheRepository interface
type MySQLCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMySQLCache creates a new MySQL result cache
func NewMySQLCache(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*MySQLCache, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS triage_cache (
			text_hash VARCHAR(64) PRIMARY KEY,
			category VARCHAR(16),
			confidence DOUBLE,
			suggested_response TEXT,
			intent VARCHAR(32),
			analyzed_at DATETIME,
			expires_at DATETIME,
			INDEX idx_triage_expires_at (expires_at)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	cache := &MySQLCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	go cache.startCleanupTask()

	return cache, nil
}

// Get retrieves a cached entry for a text hash
func (c *MySQLCache) Get(ctx context.Context, textHash string) (*core.CacheEntry, error) {
	var category, suggested, intent string
	var confidence float64
	var analyzedAt, expiresAt time.Time

	err := c.db.QueryRowContext(ctx, `
		SELECT category, confidence, suggested_response, intent, analyzed_at, expires_at
		FROM triage_cache
		WHERE text_hash = ? AND expires_at > NOW()
	`, textHash).Scan(&category, &confidence, &suggested, &intent, &analyzedAt, &expiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}

	return &core.CacheEntry{
		TextHash:          textHash,
		Category:          core.Category(category),
		Confidence:        confidence,
		SuggestedResponse: suggested,
		Intent:            intent,
		AnalyzedAt:        analyzedAt,
		ExpiresAt:         expiresAt,
	}, nil
}

// Set stores a cache entry
func (c *MySQLCache) Set(ctx context.Context, entry *core.CacheEntry) error {
	_, err := c.db.ExecContext(ctx, `
		REPLACE INTO triage_cache
			(text_hash, category, confidence, suggested_response, intent, analyzed_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.TextHash, string(entry.Category), entry.Confidence, entry.SuggestedResponse, entry.Intent,
		entry.AnalyzedAt, entry.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert cache entry: %w", err)
	}
	return nil
}

// Delete removes a cache entry
func (c *MySQLCache) Delete(ctx context.Context, textHash string) error {
	_, err := c.db.ExecContext(ctx, `
		DELETE FROM triage_cache WHERE text_hash = ?
	`, textHash)
	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Cleanup removes expired entries
func (c *MySQLCache) Cleanup(ctx context.Context) error {
	res, err := c.db.ExecContext(ctx, `
		DELETE FROM triage_cache WHERE expires_at <= NOW()
	`)
	if err != nil {
		return fmt.Errorf("failed to clean up cache: %w", err)
	}

	if expired, err := res.RowsAffected(); err == nil {
		c.logger.Debug("cleaned up expired cache entries", zap.Int64("expired_count", expired))
	}
	return nil
}

// startCleanupTask starts a background task to clean up expired entries
func (c *MySQLCache) startCleanupTask() {
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

// Stop stops the background cleanup task and closes the connection pool
func (c *MySQLCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("failed to close MySQL connection", zap.Error(err))
	}
}
