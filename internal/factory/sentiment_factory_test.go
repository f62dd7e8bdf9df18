package factory

import (
	"testing"

	"github.com/mikey/email-triage/internal/adapters/sentiment"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/utils"
	"go.uber.org/zap"
)

func newFactoryConfig(overrides map[string]any) *config.Config {
	v := config.NewEmptyViper()
	for key, value := range overrides {
		v.Set(key, value)
	}
	return config.NewFromViper(v)
}

func newSentimentFactory(overrides map[string]any) *SentimentFactory {
	logger := zap.NewNop()
	return NewSentimentFactory(newFactoryConfig(overrides), logger, utils.NewTextProcessor(logger))
}

func TestCreateProviderNone(t *testing.T) {
	f := newSentimentFactory(map[string]any{"sentiment.provider": "none"})

	selection := f.CreateProvider()
	if selection.ModelReady {
		t.Fatal("noop provider must not report the model as ready")
	}
	if _, ok := selection.Provider.(*sentiment.NoopProvider); !ok {
		t.Fatalf("provider = %T, want *sentiment.NoopProvider", selection.Provider)
	}
}

func TestCreateProviderHuggingFace(t *testing.T) {
	f := newSentimentFactory(map[string]any{"sentiment.provider": "huggingface"})

	selection := f.CreateProvider()
	if !selection.ModelReady {
		t.Fatal("huggingface provider should report the model as ready")
	}
	if _, ok := selection.Provider.(*sentiment.HuggingFaceProvider); !ok {
		t.Fatalf("provider = %T, want *sentiment.HuggingFaceProvider", selection.Provider)
	}
}

func TestCreateProviderDegradesOnMissingKey(t *testing.T) {
	// OpenAI without an API key must fall back to keyword-only mode instead
	// of failing startup.
	f := newSentimentFactory(map[string]any{
		"sentiment.provider": "openai",
		"openai.api_key":     "",
	})

	selection := f.CreateProvider()
	if selection.ModelReady {
		t.Fatal("degraded selection must not report the model as ready")
	}
	if _, ok := selection.Provider.(*sentiment.NoopProvider); !ok {
		t.Fatalf("provider = %T, want *sentiment.NoopProvider", selection.Provider)
	}
}

func TestCreateProviderDegradesOnUnknownProvider(t *testing.T) {
	f := newSentimentFactory(map[string]any{"sentiment.provider": "quantum"})

	selection := f.CreateProvider()
	if selection.ModelReady {
		t.Fatal("unknown provider must degrade to keyword-only mode")
	}
	if _, ok := selection.Provider.(*sentiment.NoopProvider); !ok {
		t.Fatalf("provider = %T, want *sentiment.NoopProvider", selection.Provider)
	}
}
