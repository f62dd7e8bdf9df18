package factory

import (
	"github.com/mikey/email-triage/internal/textproc"
	"go.uber.org/zap"
)

// NormalizerFactory creates text normalizers
type NormalizerFactory struct {
	logger *zap.Logger
}

// NewNormalizerFactory creates a new NormalizerFactory
func NewNormalizerFactory(logger *zap.Logger) *NormalizerFactory {
	return &NormalizerFactory{
		logger: logger,
	}
}

// CreateNormalizer creates a new Portuguese text normalizer
func (f *NormalizerFactory) CreateNormalizer() *textproc.Normalizer {
	return textproc.NewNormalizer(f.logger)
}
