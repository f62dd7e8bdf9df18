package sentiment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const sentimentSystemPrompt = "You are a sentiment classifier for Portuguese corporate email. Respond only with JSON."

const sentimentPromptFormat = `Classify the overall sentiment of the following email text.
Respond with a JSON object containing:
- label: one of "negative", "neutral", "positive"
- score: number between 0 and 1 (how confident you are in the label)

Text:
%s

Respond only with the JSON object and nothing else.`

// sentimentResponse is the structured reply expected from an LLM provider
type sentimentResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// OpenAIProvider maps an OpenAI chat model onto the 3-class sentiment
// contract.
type OpenAIProvider struct {
	client        *openai.Client
	modelName     string
	maxTokens     int
	temperature   float32
	maxTextChars  int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewOpenAIProvider creates a new OpenAI sentiment provider
func NewOpenAIProvider(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	maxTextChars int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *OpenAIProvider {
	return &OpenAIProvider{
		client:        openai.NewClient(apiKey),
		modelName:     modelName,
		maxTokens:     maxTokens,
		temperature:   temperature,
		maxTextChars:  maxTextChars,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// AnalyzeSentiment classifies the text's sentiment via a chat completion.
func (p *OpenAIProvider) AnalyzeSentiment(ctx context.Context, text string) (*core.SentimentSignal, error) {
	prompt := fmt.Sprintf(sentimentPromptFormat, p.textProcessor.ProcessText(text, p.maxTextChars))

	req := openai.ChatCompletionRequest{
		Model: p.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sentimentSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	}
	req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: "json_object"}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion with OpenAI: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from OpenAI")
	}

	parsed, err := parseSentimentResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("sentiment inference completed",
		zap.String("model", p.modelName),
		zap.String("label", parsed.Label),
		zap.Float64("score", parsed.Score))

	return MapLabel(parsed.Label, parsed.Score, p.modelName), nil
}

// parseSentimentResponse decodes the model reply, tolerating prose around
// the JSON object.
func parseSentimentResponse(text string) (*sentimentResponse, error) {
	var parsed sentimentResponse
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		return &parsed, nil
	}

	embedded := extractJSON(text)
	if embedded == "" {
		return nil, fmt.Errorf("no JSON object in model response: %q", text)
	}
	if err := json.Unmarshal([]byte(embedded), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse model response as JSON: %w", err)
	}
	return &parsed, nil
}
