package ports

import (
	"context"

	"github.com/mikey/email-triage/internal/core"
)

// Frontend defines the interface for the transport layer that feeds email
// text into the triage service
type Frontend interface {
	// ProcessText classifies one flat email text
	ProcessText(ctx context.Context, text string) (*core.ClassificationResult, error)

	// Start starts the frontend
	Start() error

	// Stop stops the frontend
	Stop() error
}
