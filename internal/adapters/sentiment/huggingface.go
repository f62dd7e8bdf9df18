package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
	"go.uber.org/zap"
)

// HuggingFaceProvider runs sentiment inference against the HuggingFace
// hosted inference API. The configured model is expected to emit 3-class
// sentiment labels (negative/neutral/positive or LABEL_0..LABEL_2).
type HuggingFaceProvider struct {
	httpClient    *http.Client
	endpoint      string
	modelID       string
	apiKey        string
	maxTextChars  int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// NewHuggingFaceProvider creates a new HuggingFace inference provider
func NewHuggingFaceProvider(
	endpoint string,
	modelID string,
	apiKey string,
	maxTextChars int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *HuggingFaceProvider {
	return &HuggingFaceProvider{
		httpClient:    &http.Client{},
		endpoint:      endpoint,
		modelID:       modelID,
		apiKey:        apiKey,
		maxTextChars:  maxTextChars,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// AnalyzeSentiment classifies the text's sentiment via the inference API.
func (p *HuggingFaceProvider) AnalyzeSentiment(ctx context.Context, text string) (*core.SentimentSignal, error) {
	payload, err := json.Marshal(inferenceRequest{
		Inputs: p.textProcessor.ProcessText(text, p.maxTextChars),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inference request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", p.endpoint, p.modelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read inference response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, body)
	}

	top, err := topLabel(body)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("sentiment inference completed",
		zap.String("model", p.modelID),
		zap.String("label", top.Label),
		zap.Float64("score", top.Score))

	return MapLabel(top.Label, top.Score, p.modelID), nil
}

// topLabel picks the highest-scoring label from the API response. The API
// nests results one level deeper for single-input requests, so both shapes
// are accepted.
func topLabel(body []byte) (*labelScore, error) {
	var nested [][]labelScore
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return best(nested[0])
	}

	var flat []labelScore
	if err := json.Unmarshal(body, &flat); err == nil {
		return best(flat)
	}

	return nil, fmt.Errorf("unexpected inference response shape: %s", body)
}

func best(scores []labelScore) (*labelScore, error) {
	if len(scores) == 0 {
		return nil, fmt.Errorf("empty inference response")
	}
	top := scores[0]
	for _, s := range scores[1:] {
		if s.Score > top.Score {
			top = s
		}
	}
	return &top, nil
}
