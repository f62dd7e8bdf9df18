package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikey/email-triage/internal/core"
	"go.uber.org/zap"
)

// CLIFrontend implements a command-line interface for one-shot triage
type CLIFrontend struct {
	service *core.TriageService
	logger  *zap.Logger
	verbose bool
}

// NewCLIFrontend creates a new CLI frontend
func NewCLIFrontend(service *core.TriageService, logger *zap.Logger, verbose bool) (*CLIFrontend, error) {
	return &CLIFrontend{
		service: service,
		logger:  logger,
		verbose: verbose,
	}, nil
}

// ProcessText classifies one email text and displays the results
func (f *CLIFrontend) ProcessText(ctx context.Context, text string) (*core.ClassificationResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty text")
	}

	f.logger.Debug("processing text", zap.Int("length", len(text)))

	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("Text length: %d bytes\n", len(text))
	if f.verbose {
		preview := text
		if len(preview) > 500 {
			preview = preview[:500] + "..."
		}
		fmt.Printf("\nPreview:\n%s\n", preview)
	}
	fmt.Printf("\n")

	fmt.Printf("=== Analysis ===\n")
	startTime := time.Now()
	result := f.service.Classify(ctx, text)
	duration := time.Since(startTime)

	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Category: %s\n", result.Category)
	fmt.Printf("Confidence: %.4f\n", result.Confidence)
	fmt.Printf("Intent: %s\n", result.Intent)
	fmt.Printf("Suggested response: %s\n", result.SuggestedResponse)
	fmt.Printf("Model used: %s\n", result.ModelUsed)
	fmt.Printf("Processing time: %v\n", duration)

	return result, nil
}

// Start is a no-op for the CLI frontend
func (f *CLIFrontend) Start() error {
	return nil
}

// Stop is a no-op for the CLI frontend
func (f *CLIFrontend) Stop() error {
	return nil
}
