package bootstrap

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-docsync"
	"github.com/goliatone/go-docsync/internal/logging"
	"github.com/goliatone/go-docsync/pkg/interfaces"
)

// Options captures configuration for docsync CLI bootstraps.
type Options struct {
	SourceDir      string
	DestinationDir string
	Pattern        string
	BaseURL        string
	CatalogFile    string
	LogLevel       string
	LogFormat      string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the docsync module and the configured sync service/logger.
type Module struct {
	Module  *docsync.Module
	Service interfaces.SyncService
	Logger  interfaces.Logger
}

// BuildModule constructs a docsync module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := docsync.DefaultConfig()
	if trimmed := strings.TrimSpace(opts.SourceDir); trimmed != "" {
		cfg.SourceDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.DestinationDir); trimmed != "" {
		cfg.DestinationDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Pattern = trimmed
	}
	cfg.BaseURL = strings.TrimSpace(opts.BaseURL)
	cfg.CatalogFile = strings.TrimSpace(opts.CatalogFile)
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.Logging.Provider = "gologger"
		cfg.Logging.Format = trimmed
	}

	moduleOpts := []docsync.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, docsync.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := docsync.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise docsync module: %w", err)
	}

	service := module.Sync()
	if service == nil {
		return nil, fmt.Errorf("sync service not configured")
	}

	logger := logging.SyncLogger(module.LoggerProvider())

	return &Module{
		Module:  module,
		Service: service,
		Logger:  logger,
	}, nil
}
