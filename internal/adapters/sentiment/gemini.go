package sentiment

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiProvider maps a Google Gemini model onto the 3-class sentiment
// contract.
type GeminiProvider struct {
	client        *genai.Client
	model         *genai.GenerativeModel
	modelName     string
	maxTextChars  int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewGeminiProvider creates a new Gemini sentiment provider
func NewGeminiProvider(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	maxTextChars int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(int32(maxTokens))

	return &GeminiProvider{
		client:        client,
		model:         model,
		modelName:     modelName,
		maxTextChars:  maxTextChars,
		logger:        logger,
		textProcessor: textProcessor,
	}, nil
}

// Close closes the Gemini client
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

// AnalyzeSentiment classifies the text's sentiment via Gemini.
func (p *GeminiProvider) AnalyzeSentiment(ctx context.Context, text string) (*core.SentimentSignal, error) {
	prompt := fmt.Sprintf(sentimentPromptFormat, p.textProcessor.ProcessText(text, p.maxTextChars))

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content with Gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	parsed, err := parseSentimentResponse(responseText)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("sentiment inference completed",
		zap.String("model", p.modelName),
		zap.String("label", parsed.Label),
		zap.Float64("score", parsed.Score))

	return MapLabel(parsed.Label, parsed.Score, p.modelName), nil
}
