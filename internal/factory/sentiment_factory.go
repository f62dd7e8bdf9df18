package factory

import (
	"fmt"

	"github.com/mikey/email-triage/internal/adapters/sentiment"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
	"go.uber.org/zap"
)

// ProviderSelection is the sentiment strategy chosen at startup
type ProviderSelection struct {
	Provider core.SentimentProvider
	// ModelReady is false when the keyword-only noop provider is in use
	ModelReady bool
}

// SentimentFactory creates sentiment providers
type SentimentFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewSentimentFactory creates a new sentiment factory
func NewSentimentFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *SentimentFactory {
	return &SentimentFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateProvider selects the sentiment strategy once, at startup. A provider
// that cannot be constructed degrades to the always-abstaining noop provider:
// the pipeline must become usable regardless.
func (f *SentimentFactory) CreateProvider() ProviderSelection {
	sentCfg := f.cfg.GetSentiment()

	if sentCfg.Provider == "none" || sentCfg.Provider == "" {
		f.logger.Info("sentiment model disabled, running keyword-only")
		return ProviderSelection{Provider: sentiment.NewNoopProvider()}
	}

	provider, err := f.build(sentCfg)
	if err != nil {
		f.logger.Warn("sentiment provider unavailable, running keyword-only",
			zap.String("provider", sentCfg.Provider),
			zap.Error(err))
		return ProviderSelection{Provider: sentiment.NewNoopProvider()}
	}

	f.logger.Info("sentiment provider ready", zap.String("provider", sentCfg.Provider))
	return ProviderSelection{Provider: provider, ModelReady: true}
}

func (f *SentimentFactory) build(sentCfg config.SentimentConfig) (core.SentimentProvider, error) {
	switch sentCfg.Provider {
	case "huggingface":
		hfCfg := f.cfg.GetHuggingFace()
		return sentiment.NewHuggingFaceProvider(
			hfCfg.Endpoint,
			hfCfg.ModelID,
			hfCfg.APIKey,
			sentCfg.MaxTextChars,
			f.logger,
			f.textProcessor,
		), nil
	case "openai":
		oaCfg := f.cfg.GetOpenAI()
		if oaCfg.APIKey == "" {
			return nil, fmt.Errorf("openai api key not configured")
		}
		return sentiment.NewOpenAIProvider(
			oaCfg.APIKey,
			oaCfg.ModelName,
			oaCfg.MaxTokens,
			oaCfg.Temperature,
			sentCfg.MaxTextChars,
			f.logger,
			f.textProcessor,
		), nil
	case "gemini":
		gmCfg := f.cfg.GetGemini()
		if gmCfg.APIKey == "" {
			return nil, fmt.Errorf("gemini api key not configured")
		}
		return sentiment.NewGeminiProvider(
			gmCfg.APIKey,
			gmCfg.ModelName,
			gmCfg.MaxTokens,
			gmCfg.Temperature,
			sentCfg.MaxTextChars,
			f.logger,
			f.textProcessor,
		)
	case "bedrock":
		brCfg := f.cfg.GetBedrock()
		return sentiment.NewBedrockProvider(
			brCfg.Region,
			brCfg.ModelID,
			brCfg.MaxTokens,
			brCfg.Temperature,
			sentCfg.MaxTextChars,
			f.logger,
			f.textProcessor,
		)
	default:
		return nil, fmt.Errorf("unsupported sentiment provider: %s", sentCfg.Provider)
	}
}
