package di

import (
	"flag"
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

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Sentiment provider flags
	Provider     string
	Timeout      string
	MaxTextChars int

	// HuggingFace flags
	HFAPIKey  string
	HFModelID string

	// OpenAI flags
	OpenAIAPIKey    string
	OpenAIModelName string

	// Gemini flags
	GeminiAPIKey    string
	GeminiModelName string

	// Bedrock flags
	BedrockRegion  string
	BedrockModelID string

	// Input flags
	InputFile  string
	Text       string
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	// Sentiment provider flags
	flag.StringVar(&flags.Provider, "provider", "none", "Sentiment provider (huggingface, openai, gemini, bedrock, none)")
	flag.StringVar(&flags.Timeout, "timeout", "10s", "Timeout for sentiment inference")
	flag.IntVar(&flags.MaxTextChars, "max-chars", 512, "Maximum characters sent to the sentiment model")

	// HuggingFace flags
	flag.StringVar(&flags.HFAPIKey, "hf-api-key", "", "API key for the HuggingFace inference API")
	flag.StringVar(&flags.HFModelID, "hf-model", "cardiffnlp/twitter-roberta-base-sentiment-latest", "HuggingFace model ID")

	// OpenAI flags
	flag.StringVar(&flags.OpenAIAPIKey, "openai-api-key", "", "API key for OpenAI")
	flag.StringVar(&flags.OpenAIModelName, "openai-model", "gpt-4o-mini", "OpenAI model name")

	// Gemini flags
	flag.StringVar(&flags.GeminiAPIKey, "gemini-api-key", "", "API key for Google Gemini")
	flag.StringVar(&flags.GeminiModelName, "gemini-model", "gemini-pro", "Gemini model name")

	// Bedrock flags
	flag.StringVar(&flags.BedrockRegion, "bedrock-region", "us-east-1", "AWS region for Bedrock")
	flag.StringVar(&flags.BedrockModelID, "bedrock-model", "anthropic.claude-v2", "Bedrock model ID")

	// Input flags
	flag.StringVar(&flags.InputFile, "file", "", "Input text file (use stdin if not specified)")
	flag.StringVar(&flags.Text, "text", "", "Email text to classify (overrides -file)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container
// for the CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}
		return createConfigFromFlags(flags), nil
	}); err != nil {
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
	if err := container.Provide(factory.NewNormalizerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFrontendFactory); err != nil {
		return nil, err
	}

	// Register the sentiment strategy
	if err := container.Provide(func(f *factory.SentimentFactory) factory.ProviderSelection {
		return f.CreateProvider()
	}); err != nil {
		return nil, err
	}

	// Register normalizer
	if err := container.Provide(func(f *factory.NormalizerFactory) *textproc.Normalizer {
		return f.CreateNormalizer()
	}); err != nil {
		return nil, err
	}

	// Register file text extractor (used by the frontend factory)
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

	// Register triage service with no cache
	if err := container.Provide(func(
		selection factory.ProviderSelection,
		normalizer *textproc.Normalizer,
		stats *core.Stats,
		logger *zap.Logger,
		sentimentTimeout time.Duration,
	) *core.TriageService {
		return core.NewTriageService(
			selection.Provider,
			normalizer,
			nil,   // no cache for one-shot runs
			stats,
			logger,
			false, // cache disabled
			time.Duration(0),
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

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	// CLI specific settings
	v.Set("server.frontend_type", "cli")
	v.Set("cli.verbose", flags.Verbose)

	// Sentiment provider
	v.Set("sentiment.provider", flags.Provider)
	v.Set("sentiment.timeout", flags.Timeout)
	v.Set("sentiment.max_text_chars", flags.MaxTextChars)

	switch flags.Provider {
	case "huggingface":
		v.Set("huggingface.api_key", flags.HFAPIKey)
		v.Set("huggingface.model_id", flags.HFModelID)
	case "openai":
		v.Set("openai.api_key", flags.OpenAIAPIKey)
		v.Set("openai.model_name", flags.OpenAIModelName)
	case "gemini":
		v.Set("gemini.api_key", flags.GeminiAPIKey)
		v.Set("gemini.model_name", flags.GeminiModelName)
	case "bedrock":
		v.Set("bedrock.region", flags.BedrockRegion)
		v.Set("bedrock.model_id", flags.BedrockModelID)
	}

	return config.NewFromViper(v)
}
