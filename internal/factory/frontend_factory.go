package factory

import (
	"fmt"

	"github.com/mikey/email-triage/internal/adapters/server"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/extract"
	"github.com/mikey/email-triage/internal/ports"
	"go.uber.org/zap"
)

// FrontendFactory creates frontends based on configuration
type FrontendFactory struct {
	cfg       *config.Config
	logger    *zap.Logger
	service   *core.TriageService
	extractor *extract.Extractor
}

// NewFrontendFactory creates a new frontend factory
func NewFrontendFactory(
	cfg *config.Config,
	logger *zap.Logger,
	service *core.TriageService,
	extractor *extract.Extractor,
) *FrontendFactory {
	return &FrontendFactory{
		cfg:       cfg,
		logger:    logger,
		service:   service,
		extractor: extractor,
	}
}

// CreateFrontend creates a frontend based on the configuration
func (f *FrontendFactory) CreateFrontend() (ports.Frontend, error) {
	serverCfg := f.cfg.GetServer()

	switch serverCfg.FrontendType {
	case "http":
		return server.NewHTTPServer(
			f.service,
			f.extractor,
			f.logger,
			serverCfg.ListenAddress,
			serverCfg.MaxUploadBytes,
			serverCfg.StaticDir,
		), nil
	case "cli":
		return server.NewCLIFrontend(
			f.service,
			f.logger,
			f.cfg.GetBool("cli.verbose"),
		)
	default:
		return nil, fmt.Errorf("unsupported frontend type: %s", serverCfg.FrontendType)
	}
}
