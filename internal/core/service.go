package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const displayTextLimit = 100

// TextNormalizer produces the auxiliary stemmed/stopword-filtered form of a
// text. Its output is not consumed by the scoring paths.
type TextNormalizer interface {
	Normalize(text string) string
}

// TriageService is the core classification pipeline
type TriageService struct {
	sentiment        SentimentProvider
	normalizer       TextNormalizer
	cache            CacheRepository
	stats            *Stats
	logger           *zap.Logger
	cacheEnabled     bool
	cacheTTL         time.Duration
	sentimentTimeout time.Duration
	modelReady       bool
}

// NewTriageService creates a new triage service
func NewTriageService(
	sentiment SentimentProvider,
	normalizer TextNormalizer,
	cache CacheRepository,
	stats *Stats,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
	sentimentTimeout time.Duration,
	modelReady bool,
) *TriageService {
	return &TriageService{
		sentiment:        sentiment,
		normalizer:       normalizer,
		cache:            cache,
		stats:            stats,
		logger:           logger,
		cacheEnabled:     cacheEnabled,
		cacheTTL:         cacheTTL,
		sentimentTimeout: sentimentTimeout,
		modelReady:       modelReady,
	}
}

// ModelReady reports whether a real sentiment provider was wired at startup.
func (s *TriageService) ModelReady() bool {
	return s.modelReady
}

// Stats returns a consistent snapshot of the running counters.
func (s *TriageService) Stats() StatsSnapshot {
	return s.stats.Snapshot()
}

// Classify runs the full triage pipeline on one email text. It never fails
// for non-empty input: sentiment trouble is absorbed as an abstention and any
// unexpected panic degrades to the keyword-only result. Callers must reject
// empty or whitespace-only text before calling.
func (s *TriageService) Classify(ctx context.Context, originalText string) (result *ClassificationResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("classification failed unexpectedly, using keyword-only result",
				zap.Any("panic", r))
			result = s.keywordOnly(originalText)
		}
	}()

	// Pure greeting/thanks with no request: skip scoring entirely.
	if IsGreetingNoAction(originalText) {
		return s.finish(originalText, CategoryUnproductive, 0.95, "greeting-rules")
	}

	if s.cacheEnabled && s.cache != nil {
		if entry, err := s.cache.Get(ctx, TextHash(originalText)); err == nil {
			s.logger.Debug("cache hit for text", zap.String("text_hash", entry.TextHash))
			s.stats.Record(entry.Category, entry.Confidence)
			return &ClassificationResult{
				Category:          entry.Category,
				Confidence:        entry.Confidence,
				OriginalText:      truncateForDisplay(originalText),
				SuggestedResponse: entry.SuggestedResponse,
				Intent:            entry.Intent,
				AnalyzedAt:        time.Now(),
				ModelUsed:         "cache",
				ProcessingID:      uuid.NewString(),
			}
		}
	}

	// Alternate preprocessing path: computed for observability, never fed to
	// the scorers (stemming would corrupt the keyword tables).
	if s.normalizer != nil {
		normalized := s.normalizer.Normalize(originalText)
		s.logger.Debug("normalized text computed",
			zap.Int("token_count", len(strings.Fields(normalized))))
	}

	kw := ScoreKeywords(strings.ToLower(originalText))
	sentiment := s.sentimentSignal(ctx, originalText)
	category, confidence := CombineSignals(kw, sentiment)

	modelUsed := "keywords"
	if !sentiment.Abstained() {
		modelUsed = sentiment.ModelUsed
	}

	s.logger.Debug("signals combined",
		zap.String("keyword_category", string(kw.Category)),
		zap.Int("keyword_raw_score", kw.RawScore),
		zap.Bool("sentiment_abstained", sentiment.Abstained()),
		zap.String("final_category", string(category)),
		zap.Float64("final_confidence", confidence))

	return s.finish(originalText, category, confidence, modelUsed)
}

// sentimentSignal asks the provider for an opinion under the configured
// timeout. Failures are logged and absorbed as abstention.
func (s *TriageService) sentimentSignal(ctx context.Context, text string) *SentimentSignal {
	if s.sentiment == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.sentimentTimeout)
	defer cancel()

	signal, err := s.sentiment.AnalyzeSentiment(ctx, text)
	if err != nil {
		s.logger.Warn("sentiment analysis failed, continuing keyword-only", zap.Error(err))
		return nil
	}
	return signal
}

// finish assembles the result, records statistics and updates the cache.
func (s *TriageService) finish(originalText string, category Category, confidence float64, modelUsed string) *ClassificationResult {
	intent := DetectIntent(originalText)
	suggested := SuggestResponse(category, originalText)
	now := time.Now()

	s.stats.Record(category, confidence)

	if s.cacheEnabled && s.cache != nil {
		entry := &CacheEntry{
			TextHash:          TextHash(originalText),
			Category:          category,
			Confidence:        confidence,
			SuggestedResponse: suggested,
			Intent:            intent,
			AnalyzedAt:        now,
			ExpiresAt:         now.Add(s.cacheTTL),
		}
		if err := s.cache.Set(context.Background(), entry); err != nil {
			s.logger.Error("failed to update result cache", zap.Error(err))
		}
	}

	return &ClassificationResult{
		Category:          category,
		Confidence:        confidence,
		OriginalText:      truncateForDisplay(originalText),
		SuggestedResponse: suggested,
		Intent:            intent,
		AnalyzedAt:        now,
		ModelUsed:         modelUsed,
		ProcessingID:      uuid.NewString(),
	}
}

// keywordOnly is the unconditional fallback used when the pipeline hits an
// unexpected failure.
func (s *TriageService) keywordOnly(originalText string) *ClassificationResult {
	kw := ScoreKeywords(strings.ToLower(originalText))
	suggested := SuggestResponse(kw.Category, originalText)

	s.stats.Record(kw.Category, kw.Confidence)

	return &ClassificationResult{
		Category:          kw.Category,
		Confidence:        kw.Confidence,
		OriginalText:      truncateForDisplay(originalText),
		SuggestedResponse: suggested,
		Intent:            DetectIntent(originalText),
		AnalyzedAt:        time.Now(),
		ModelUsed:         "keywords",
		ProcessingID:      uuid.NewString(),
	}
}

// TextHash returns the cache key for a text.
func TextHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// truncateForDisplay shortens long texts for the result payload. Rune-based
// so accented Portuguese text is never cut mid-character.
func truncateForDisplay(text string) string {
	runes := []rune(text)
	if len(runes) <= displayTextLimit {
		return text
	}
	return string(runes[:displayTextLimit]) + "..."
}
