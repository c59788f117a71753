package docs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-docsync/internal/catalog"
	"github.com/goliatone/go-docsync/internal/identity"
	"github.com/goliatone/go-docsync/internal/logging"
	"github.com/goliatone/go-docsync/internal/routes"
	"github.com/goliatone/go-docsync/pkg/interfaces"
)

// Config controls where the sync pipeline reads from and writes to.
type Config struct {
	SourceDir      string
	DestinationDir string
	Pattern        string
	Parser         interfaces.ParseOptions
}

// Dependencies lists the collaborators required by the sync service.
type Dependencies struct {
	Catalog *catalog.Catalog
	Routes  *routes.Resolver
	Logger  interfaces.Logger
	Parser  interfaces.MarkdownParser
}

// Service implements interfaces.SyncService for filesystem-backed articles.
type Service struct {
	cfg     Config
	loader  *Loader
	writer  *Writer
	catalog *catalog.Catalog
	routes  *routes.Resolver
	parser  interfaces.MarkdownParser
	logger  interfaces.Logger
	now     func() time.Time
}

var _ interfaces.SyncService = (*Service)(nil)

// NewService constructs the sync service. When no parser is supplied a
// Goldmark parser with the configured defaults is created.
func NewService(cfg Config, deps Dependencies) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.SourceDir)
	if err != nil {
		return nil, err
	}

	if deps.Catalog == nil {
		return nil, errors.New("docs service: catalog is required")
	}

	parser := deps.Parser
	if parser == nil {
		parser = NewGoldmarkParser(cfg.Parser)
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Service{
		cfg:     cfg,
		loader:  NewLoader(filesystem, LoaderConfig{Pattern: cfg.Pattern}),
		writer:  NewWriter(cfg.DestinationDir),
		catalog: deps.Catalog,
		routes:  deps.Routes,
		parser:  parser,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Sync runs the whole pipeline once: discover, resolve, look up, rewrite,
// compose, write. Files are processed independently and in filename order.
// The first failure aborts the run; files already written stay written.
func (s *Service) Sync(ctx context.Context, opts interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	started := s.now()

	files, err := s.loader.LoadDirectory(ctx, opts.Pattern)
	if err != nil {
		return nil, err
	}

	result := &interfaces.SyncResult{
		RunID:  uuid.New(),
		DryRun: opts.DryRun,
	}

	runLogger := logging.WithFields(s.logger, map[string]any{
		"run_id":  result.RunID.String(),
		"dry_run": opts.DryRun,
	})

	for _, file := range files {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		page, err := s.syncFile(runLogger, file, opts)
		if err != nil {
			runLogger.Error("docs.sync.aborted", "error", err, "file", file.Name)
			return nil, err
		}

		result.Pages = append(result.Pages, page)
		if !opts.DryRun {
			result.Written++
		}
	}

	result.Duration = s.now().Sub(started)
	runLogger.Info("docs.sync.completed",
		"pages", len(result.Pages),
		"written", result.Written,
		"duration_ms", result.Duration.Milliseconds(),
	)

	return result, nil
}

// Render parses Markdown bytes into HTML using the configured parser.
func (s *Service) Render(ctx context.Context, markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return s.parser.ParseWithOptions(markdown, mergeParseOptions(s.cfg.Parser, opts))
}

// LoadPage composes a single page by slug without writing it, searching the
// source directory for the file that resolves to the slug. Used by preview
// workflows.
func (s *Service) LoadPage(ctx context.Context, slug string) (*interfaces.Page, error) {
	files, err := s.loader.LoadDirectory(ctx, "")
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		if ResolveSlug(file.Name) != slug {
			continue
		}
		page, err := s.composePage(file)
		if err != nil {
			return nil, err
		}
		// Render the article body without the injected header; the
		// frontmatter block is data, not markdown.
		article, _, stripErr := StripFrontMatter(page.Body)
		if stripErr != nil {
			return nil, stripErr
		}
		html, renderErr := s.Render(ctx, article, interfaces.ParseOptions{})
		if renderErr != nil {
			return nil, fmt.Errorf("docs service: render %s: %w", page.Slug, renderErr)
		}
		page.BodyHTML = html
		return page, nil
	}

	return nil, fmt.Errorf("docs service: no source file resolves to slug %q", slug)
}

func (s *Service) syncFile(runLogger interfaces.Logger, file *SourceFile, opts interfaces.SyncOptions) (*interfaces.Page, error) {
	page, err := s.composePage(file)
	if err != nil {
		return nil, err
	}

	fileLogger := logging.WithSyncContext(runLogger, file.Name, page.Slug, syncAction(opts.DryRun))

	if opts.DryRun {
		fileLogger.Info("docs.sync.file", "url", page.URL)
		return page, nil
	}

	outputPath, err := s.writer.Write(page.Slug, page.Body)
	if err != nil {
		return nil, err
	}
	page.OutputPath = outputPath

	fileLogger.Info("docs.sync.file", "url", page.URL, "output", outputPath)
	return page, nil
}

// composePage runs every per-file stage except the write: slug resolution,
// catalog lookup, header stripping, link rewriting, and frontmatter injection.
func (s *Service) composePage(file *SourceFile) (*interfaces.Page, error) {
	slug := ResolveSlug(file.Name)

	entry, err := s.catalog.Lookup(slug)
	if err != nil {
		return nil, fmt.Errorf("docs sync %s: %w", file.Name, err)
	}

	body, existing, err := StripFrontMatter(file.Data)
	if err != nil {
		return nil, fmt.Errorf("docs sync %s: %w", file.Name, err)
	}
	if existing != nil {
		// The catalog is authoritative; a header in the source is replaced.
		s.logger.Warn("docs.sync.frontmatter_replaced",
			"file", file.Name,
			"source_title", existing.Title,
			"catalog_title", entry.Title,
		)
	}

	body = RewriteLinks(body)

	header, err := ComposeFrontMatter(entry.Title, entry.Description)
	if err != nil {
		return nil, fmt.Errorf("docs sync %s: %w", file.Name, err)
	}

	content := append(header, bytes.TrimLeft(body, " \t\r\n")...)

	url := ""
	if s.routes != nil {
		if resolved, urlErr := s.routes.PageURL(slug); urlErr == nil {
			url = resolved
		}
	}

	return &interfaces.Page{
		ID:           identity.DocumentUUID(slug),
		Slug:         slug,
		Title:        entry.Title,
		Description:  entry.Description,
		SourcePath:   filepath.Join(s.cfg.SourceDir, file.Name),
		OutputPath:   s.writer.Path(slug),
		URL:          url,
		Body:         content,
		LastModified: file.ModTime,
	}, nil
}

func syncAction(dryRun bool) string {
	if dryRun {
		return "preview"
	}
	return "write"
}

func mergeParseOptions(base, override interfaces.ParseOptions) interfaces.ParseOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Sanitize {
		result.Sanitize = true
	}
	if override.HardWraps {
		result.HardWraps = true
	}
	if override.SafeMode {
		result.SafeMode = true
	}
	return result
}

func prepareFilesystem(sourceDir string) (fs.FS, error) {
	if strings.TrimSpace(sourceDir) == "" {
		sourceDir = "."
	}
	if _, err := os.Stat(sourceDir); err != nil {
		return nil, fmt.Errorf("docs service: stat source directory %s: %w", sourceDir, err)
	}
	return os.DirFS(sourceDir), nil
}
