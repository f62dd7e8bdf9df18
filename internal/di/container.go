package di

import (
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/extract"
	"github.com/mikey/email-triage/internal/factory"
	"github.com/mikey/email-triage/internal/logging"
	"github.com/mikey/email-triage/internal/ports"
	"github.com/mikey/email-triage/internal/textproc"
	"github.com/mikey/email-triage/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewSentimentFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewNormalizerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFrontendFactory); err != nil {
		return nil, err
	}

	// Register the sentiment strategy (noop when no model is configured)
	if err := container.Provide(func(f *factory.SentimentFactory) factory.ProviderSelection {
		return f.CreateProvider()
	}); err != nil {
		return nil, err
	}

	// Register cache repository and settings
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheRepository, error) {
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.CacheFactory) (factory.CacheSettings, error) {
		return f.GetCacheSettings()
	}); err != nil {
		return nil, err
	}

	// Register normalizer
	if err := container.Provide(func(f *factory.NormalizerFactory) *textproc.Normalizer {
		return f.CreateNormalizer()
	}); err != nil {
		return nil, err
	}

	// Register file text extractor
	if err := container.Provide(extract.NewExtractor); err != nil {
		return nil, err
	}

	// Register statistics
	if err := container.Provide(core.NewStats); err != nil {
		return nil, err
	}

	// Register sentiment timeout
	if err := container.Provide(func(cfg *config.Config) (time.Duration, error) {
		return cfg.GetDuration("sentiment.timeout")
	}); err != nil {
		return nil, err
	}

	// Register triage service
	if err := container.Provide(func(
		selection factory.ProviderSelection,
		normalizer *textproc.Normalizer,
		cacheRepo core.CacheRepository,
		stats *core.Stats,
		logger *zap.Logger,
		cacheSettings factory.CacheSettings,
		sentimentTimeout time.Duration,
	) *core.TriageService {
		return core.NewTriageService(
			selection.Provider,
			normalizer,
			cacheRepo,
			stats,
			logger,
			cacheSettings.Enabled,
			cacheSettings.TTL,
			sentimentTimeout,
			selection.ModelReady,
		)
	}); err != nil {
		return nil, err
	}

	// Register frontend
	if err := container.Provide(func(f *factory.FrontendFactory) (ports.Frontend, error) {
		return f.CreateFrontend()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
