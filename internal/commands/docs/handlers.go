package docscmd

import (
	"context"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-docsync/internal/commands"
	"github.com/goliatone/go-docsync/internal/logging"
	"github.com/goliatone/go-docsync/pkg/interfaces"
)

const (
	syncOperation    = "docs.sync_directory"
	previewOperation = "docs.preview_document"
)

var (
	_ command.Commander[SyncDirectoryCommand]   = (*SyncDirectoryHandler)(nil)
	_ command.Commander[PreviewDocumentCommand] = (*PreviewDocumentHandler)(nil)
)

// SyncDirectoryHandler orchestrates documentation sync runs via the shared command handler foundation.
type SyncDirectoryHandler struct {
	inner *commands.Handler[SyncDirectoryCommand]
}

// NewSyncDirectoryHandler creates a handler bound to the supplied sync service.
func NewSyncDirectoryHandler(service interfaces.SyncService, logger interfaces.Logger, opts ...commands.HandlerOption[SyncDirectoryCommand]) *SyncDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SyncDirectoryCommand) error {
		result, err := service.Sync(ctx, interfaces.SyncOptions{
			Pattern: msg.Pattern,
			DryRun:  msg.DryRun,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"run_id":      result.RunID.String(),
				"page_count":  len(result.Pages),
				"written":     result.Written,
				"dry_run":     msg.DryRun,
				"duration_ms": result.Duration.Milliseconds(),
			}).Info("docs.command.sync_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[SyncDirectoryCommand]{
		commands.WithLogger[SyncDirectoryCommand](baseLogger),
		commands.WithOperation[SyncDirectoryCommand](syncOperation),
		commands.WithMessageFields(func(msg SyncDirectoryCommand) map[string]any {
			fields := map[string]any{}
			if msg.Pattern != "" {
				fields["pattern"] = msg.Pattern
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SyncDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncDirectoryCommand].
func (h *SyncDirectoryHandler) Execute(ctx context.Context, msg SyncDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PreviewDocumentHandler composes a single document for inspection without writing output.
type PreviewDocumentHandler struct {
	inner *commands.Handler[PreviewDocumentCommand]
}

// NewPreviewDocumentHandler creates a handler bound to the supplied sync service.
func NewPreviewDocumentHandler(service interfaces.SyncService, logger interfaces.Logger, opts ...commands.HandlerOption[PreviewDocumentCommand]) *PreviewDocumentHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PreviewDocumentCommand) error {
		page, err := service.LoadPage(ctx, msg.Slug)
		if err != nil {
			return err
		}
		if page != nil {
			logging.WithFields(baseLogger, map[string]any{
				"slug":       page.Slug,
				"title":      page.Title,
				"url":        page.URL,
				"body_bytes": len(page.Body),
			}).Info("docs.command.preview_document.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[PreviewDocumentCommand]{
		commands.WithLogger[PreviewDocumentCommand](baseLogger),
		commands.WithOperation[PreviewDocumentCommand](previewOperation),
		commands.WithMessageFields(func(msg PreviewDocumentCommand) map[string]any {
			return map[string]any{"slug": msg.Slug}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[PreviewDocumentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PreviewDocumentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PreviewDocumentCommand].
func (h *PreviewDocumentHandler) Execute(ctx context.Context, msg PreviewDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}
