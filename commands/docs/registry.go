package docsadapter

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-docsync/internal/commands"
	docscmd "github.com/goliatone/go-docsync/internal/commands/docs"
	"github.com/goliatone/go-docsync/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the docs command handlers produced by RegisterDocsCommands.
type HandlerSet struct {
	Sync    *docscmd.SyncDirectoryHandler
	Preview *docscmd.PreviewDocumentHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	syncHandlerOpts    []commands.HandlerOption[docscmd.SyncDirectoryCommand]
	previewHandlerOpts []commands.HandlerOption[docscmd.PreviewDocumentCommand]
}

// WithSyncHandlerOptions forwards options to the SyncDirectoryHandler constructor.
func WithSyncHandlerOptions(opts ...commands.HandlerOption[docscmd.SyncDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.syncHandlerOpts = append(cfg.syncHandlerOpts, opts...)
	}
}

// WithPreviewHandlerOptions forwards options to the PreviewDocumentHandler constructor.
func WithPreviewHandlerOptions(opts ...commands.HandlerOption[docscmd.PreviewDocumentCommand]) Option {
	return func(cfg *options) {
		cfg.previewHandlerOpts = append(cfg.previewHandlerOpts, opts...)
	}
}

// RegisterDocsCommands builds docs command handlers and registers them with the provided
// registry. A HandlerSet containing the constructed handlers is returned so callers can wire
// additional integrations (dispatcher, cron) as needed.
func RegisterDocsCommands(reg CommandRegistry, service interfaces.SyncService, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("docs command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "docs")

	syncHandler := docscmd.NewSyncDirectoryHandler(service, logger, cfg.syncHandlerOpts...)
	previewHandler := docscmd.NewPreviewDocumentHandler(service, logger, cfg.previewHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(syncHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(previewHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Sync:    syncHandler,
		Preview: previewHandler,
	}, nil
}

// RegisterSyncCron wires the provided sync handler into a cron registrar using the supplied
// command configuration and message payload. The handler is executed with a background context.
func RegisterSyncCron(reg CronRegistrar, handler *docscmd.SyncDirectoryHandler, cfg command.HandlerConfig, msg docscmd.SyncDirectoryCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
