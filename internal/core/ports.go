package core

import (
	"context"
)

// SentimentProvider defines the interface for the optional sentiment model.
// Implementations return an abstaining signal rather than an error when the
// model simply has no opinion; errors are reserved for transport failures.
type SentimentProvider interface {
	// AnalyzeSentiment classifies the text's sentiment and maps it to a
	// triage category (or an abstention).
	AnalyzeSentiment(ctx context.Context, text string) (*SentimentSignal, error)
}

// CacheRepository defines the interface for caching classification results
type CacheRepository interface {
	// Get retrieves a cached entry for a text hash
	Get(ctx context.Context, textHash string) (*CacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, textHash string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}
