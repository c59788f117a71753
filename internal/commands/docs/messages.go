package docscmd

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-docsync/internal/docs"
)

const (
	syncDirectoryMessageType   = "docsync.docs.sync_directory"
	previewDocumentMessageType = "docsync.docs.preview_document"
)

// SyncDirectoryCommand triggers a full documentation sync run. Pattern narrows
// the source files considered; DryRun composes pages without writing them.
type SyncDirectoryCommand struct {
	// Pattern optionally overrides the configured filename glob (e.g. "*.md").
	Pattern string `json:"pattern,omitempty"`
	// DryRun toggles preview mode to compose pages without touching the destination.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (SyncDirectoryCommand) Type() string { return syncDirectoryMessageType }

// Validate rejects glob patterns that filepath.Match cannot evaluate.
func (cmd SyncDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Pattern, validation.By(func(value any) error {
			pattern := strings.TrimSpace(value.(string))
			if pattern == "" {
				return nil
			}
			if _, err := filepath.Match(pattern, "probe.md"); err != nil {
				return validation.NewError("docsync.docs.sync_directory.pattern_invalid", "pattern is not a valid glob")
			}
			return nil
		})),
	)
}

// PreviewDocumentCommand composes and renders a single document by slug
// without writing it to the destination directory.
type PreviewDocumentCommand struct {
	// Slug selects the document to preview (e.g. "validation").
	Slug string `json:"slug"`
}

// Type implements command.Message.
func (PreviewDocumentCommand) Type() string { return previewDocumentMessageType }

// Validate ensures a well-formed slug is present before handlers execute.
func (cmd PreviewDocumentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Slug, validation.Required, validation.By(func(value any) error {
			slug := strings.TrimSpace(value.(string))
			if slug == "" {
				return validation.NewError("docsync.docs.preview_document.slug_required", "slug is required")
			}
			if !docs.IsValidSlug(slug) {
				return validation.NewError("docsync.docs.preview_document.slug_invalid", "slug is not URL-safe")
			}
			return nil
		})),
	)
}
