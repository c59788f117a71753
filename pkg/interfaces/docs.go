package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across invocations so hosts can share a
// single parser instance without additional locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// SyncService exposes the documentation sync workflow: discover source
// articles, attach catalog metadata, rewrite links, and publish the result
// into the site content directory.
type SyncService interface {
	Sync(ctx context.Context, opts SyncOptions) (*SyncResult, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	LoadPage(ctx context.Context, slug string) (*Page, error)
}

// SyncOptions narrows the scope of a single sync run.
type SyncOptions struct {
	// Pattern overrides the configured discovery glob (defaults to "*.md").
	Pattern string
	// DryRun reports what the run would publish without writing output files.
	DryRun bool
}

// Page describes a single published (or publishable) documentation page.
type Page struct {
	// ID is derived deterministically from the slug so repeated runs report
	// stable identifiers.
	ID          uuid.UUID
	Slug        string
	Title       string
	Description string
	SourcePath  string
	OutputPath  string
	// URL is the routed location of the page on the published site.
	URL  string
	Body []byte
	// BodyHTML is populated lazily by Render-based workflows.
	BodyHTML     []byte
	LastModified time.Time
}

// SyncResult summarises a sync run across every discovered source file.
type SyncResult struct {
	RunID    uuid.UUID
	Pages    []*Page
	Written  int
	DryRun   bool
	Duration time.Duration
}
