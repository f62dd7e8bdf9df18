package sentiment

import (
	"context"

	"github.com/mikey/email-triage/internal/core"
)

// NoopProvider always abstains. It is the permanent keyword-only mode, wired
// when no sentiment model is configured or when the configured provider
// fails to construct.
type NoopProvider struct{}

// NewNoopProvider creates the always-abstaining provider.
func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

// AnalyzeSentiment returns an abstention for every text.
func (p *NoopProvider) AnalyzeSentiment(_ context.Context, _ string) (*core.SentimentSignal, error) {
	return &core.SentimentSignal{
		Confidence: 0.5,
		ModelUsed:  "none",
	}, nil
}
