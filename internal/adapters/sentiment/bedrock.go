package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
	"go.uber.org/zap"
)

// BedrockProvider maps an Amazon Bedrock model onto the 3-class sentiment
// contract.
type BedrockProvider struct {
	client        *bedrockruntime.Client
	modelID       string
	maxTokens     int
	temperature   float32
	maxTextChars  int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewBedrockProvider creates a new Bedrock sentiment provider
func NewBedrockProvider(
	region string,
	modelID string,
	maxTokens int,
	temperature float32,
	maxTextChars int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) (*BedrockProvider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &BedrockProvider{
		client:        bedrockruntime.NewFromConfig(awsCfg),
		modelID:       modelID,
		maxTokens:     maxTokens,
		temperature:   temperature,
		maxTextChars:  maxTextChars,
		logger:        logger,
		textProcessor: textProcessor,
	}, nil
}

func (p *BedrockProvider) isAnthropicModel() bool {
	return strings.HasPrefix(p.modelID, "anthropic.")
}

// AnalyzeSentiment classifies the text's sentiment via Bedrock.
func (p *BedrockProvider) AnalyzeSentiment(ctx context.Context, text string) (*core.SentimentSignal, error) {
	prompt := fmt.Sprintf(sentimentPromptFormat, p.textProcessor.ProcessText(text, p.maxTextChars))

	var payload []byte
	var err error
	if p.isAnthropicModel() {
		payload, err = json.Marshal(map[string]interface{}{
			"prompt":               fmt.Sprintf("\n\nHuman: %s\n\nAssistant:", prompt),
			"max_tokens_to_sample": p.maxTokens,
			"temperature":          p.temperature,
		})
	} else {
		payload, err = json.Marshal(map[string]interface{}{
			"prompt":      prompt,
			"max_tokens":  p.maxTokens,
			"temperature": p.temperature,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	resp, err := p.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &p.modelID,
		Body:        payload,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke Bedrock model: %w", err)
	}

	responseText, err := p.responseText(resp.Body)
	if err != nil {
		return nil, err
	}

	parsed, err := parseSentimentResponse(responseText)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("sentiment inference completed",
		zap.String("model", p.modelID),
		zap.String("label", parsed.Label),
		zap.Float64("score", parsed.Score))

	return MapLabel(parsed.Label, parsed.Score, p.modelID), nil
}

// responseText extracts the completion text from a Bedrock response body.
func (p *BedrockProvider) responseText(body []byte) (string, error) {
	if p.isAnthropicModel() {
		var claudeResp struct {
			Completion string `json:"completion"`
		}
		if err := json.Unmarshal(body, &claudeResp); err != nil {
			return "", fmt.Errorf("failed to unmarshal Claude response: %w", err)
		}
		return claudeResp.Completion, nil
	}

	var genericResp struct {
		Output   string `json:"output"`
		Text     string `json:"text"`
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &genericResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal model response: %w", err)
	}
	switch {
	case genericResp.Output != "":
		return genericResp.Output, nil
	case genericResp.Text != "":
		return genericResp.Text, nil
	case genericResp.Response != "":
		return genericResp.Response, nil
	default:
		return string(body), nil
	}
}
