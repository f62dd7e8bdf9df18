package core

import (
	"time"
)

// Category is the triage outcome for an email text.
type Category string

const (
	// CategoryProductive marks emails that expect an action or response.
	CategoryProductive Category = "Produtivo"
	// CategoryUnproductive marks purely social emails (thanks, greetings).
	CategoryUnproductive Category = "Improdutivo"
)

// ClassificationResult represents the outcome of classifying one email text
type ClassificationResult struct {
	Category          Category
	Confidence        float64
	OriginalText      string
	SuggestedResponse string
	Intent            string
	AnalyzedAt        time.Time
	ModelUsed         string
	ProcessingID      string
}

// KeywordScore is the rule-based signal derived from the keyword tables
type KeywordScore struct {
	Category            Category
	Confidence          float64
	RawScore            int
	ProductiveMatches   int
	UnproductiveMatches int
}

// SentimentSignal is the opinion of the external sentiment model.
// An empty Category means the model abstained (neutral output, or the
// provider was unavailable); the combiner must never treat it as a vote.
type SentimentSignal struct {
	Category   Category
	Confidence float64
	Label      string
	ModelUsed  string
}

// Abstained reports whether the signal carries no category.
func (s *SentimentSignal) Abstained() bool {
	return s == nil || s.Category == ""
}

// CacheEntry is a cached classification keyed by a hash of the input text
type CacheEntry struct {
	TextHash          string
	Category          Category
	Confidence        float64
	SuggestedResponse string
	Intent            string
	AnalyzedAt        time.Time
	ExpiresAt         time.Time
}

// StatsSnapshot is a point-in-time view of the running counters
type StatsSnapshot struct {
	TotalClassifications int64   `json:"total_classifications"`
	ProductiveCount      int64   `json:"productive_count"`
	UnproductiveCount    int64   `json:"unproductive_count"`
	AverageConfidence    float64 `json:"average_confidence"`
}
