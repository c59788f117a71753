package docsync

import (
	"strings"

	docsadapter "github.com/goliatone/go-docsync/commands/docs"
	"github.com/goliatone/go-docsync/internal/catalog"
	"github.com/goliatone/go-docsync/internal/docs"
	"github.com/goliatone/go-docsync/internal/logging"
	"github.com/goliatone/go-docsync/internal/logging/gologger"
	"github.com/goliatone/go-docsync/internal/routes"
	"github.com/goliatone/go-docsync/pkg/interfaces"
)

// SyncService exports the sync service contract for consumers of the docsync package.
type SyncService = interfaces.SyncService

// SyncOptions exports the per-run sync options.
type SyncOptions = interfaces.SyncOptions

// SyncResult exports the sync run summary.
type SyncResult = interfaces.SyncResult

// Page exports the composed document DTO.
type Page = interfaces.Page

// Catalog exports the slug metadata table.
type Catalog = catalog.Catalog

// CatalogEntry exports a single title/description record.
type CatalogEntry = catalog.Entry

// Module represents the top level docsync runtime façade.
type Module struct {
	config   Config
	catalog  *catalog.Catalog
	service  interfaces.SyncService
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
}

// Option customises module construction.
type Option func(*moduleOptions)

type moduleOptions struct {
	provider interfaces.LoggerProvider
	catalog  *catalog.Catalog
	parser   interfaces.MarkdownParser
}

// WithLoggerProvider overrides the logger provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithCatalog overrides the metadata catalog built from Config.CatalogFile.
func WithCatalog(table *catalog.Catalog) Option {
	return func(o *moduleOptions) {
		o.catalog = table
	}
}

// WithParser overrides the Markdown parser used for preview rendering.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(o *moduleOptions) {
		o.parser = parser
	}
}

// New constructs a docsync module using the provided configuration and optional overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	overrides := moduleOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&overrides)
		}
	}

	provider := overrides.provider
	if provider == nil {
		built, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	table := overrides.catalog
	if table == nil {
		if strings.TrimSpace(cfg.CatalogFile) != "" {
			loaded, err := catalog.LoadFile(cfg.CatalogFile)
			if err != nil {
				return nil, err
			}
			table = loaded
		} else {
			table = catalog.Default()
		}
	}

	service, err := docs.NewService(docs.Config{
		SourceDir:      cfg.SourceDir,
		DestinationDir: cfg.DestinationDir,
		Pattern:        cfg.Pattern,
		Parser: interfaces.ParseOptions{
			Extensions: cfg.Parser.Extensions,
			Sanitize:   cfg.Parser.Sanitize,
			HardWraps:  cfg.Parser.HardWraps,
			SafeMode:   cfg.Parser.SafeMode,
		},
	}, docs.Dependencies{
		Catalog: table,
		Routes:  routes.NewResolver(cfg.BaseURL),
		Logger:  logging.SyncLogger(provider),
		Parser:  overrides.parser,
	})
	if err != nil {
		return nil, err
	}

	return &Module{
		config:   cfg,
		catalog:  table,
		service:  service,
		provider: provider,
		logger:   logging.ModuleLogger(provider, ""),
	}, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.config
}

// Sync returns the configured sync service.
func (m *Module) Sync() SyncService {
	if m == nil {
		return nil
	}
	return m.service
}

// Catalog returns the slug metadata table backing lookups.
func (m *Module) Catalog() *Catalog {
	if m == nil {
		return nil
	}
	return m.catalog
}

// Logger returns the module-scoped root logger.
func (m *Module) Logger() interfaces.Logger {
	if m == nil {
		return logging.NoOp()
	}
	return m.logger
}

// LoggerProvider exposes the provider so hosts can scope additional loggers.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

// RegisterCommands wires the docs command handlers against the module's sync
// service and registers them with the supplied registry. Registry may be nil
// when only the handler set is wanted.
func (m *Module) RegisterCommands(reg docsadapter.CommandRegistry, opts ...docsadapter.Option) (*docsadapter.HandlerSet, error) {
	return docsadapter.RegisterDocsCommands(reg, m.service, m.provider, opts...)
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	format := cfg.Format
	if strings.EqualFold(strings.TrimSpace(cfg.Provider), "console") && strings.TrimSpace(format) == "" {
		format = "console"
	}
	return gologger.NewProvider(gologger.Config{
		Level:     cfg.Level,
		Format:    format,
		AddSource: cfg.AddSource,
		Focus:     cfg.Focus,
	})
}
