package runtimeconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrSourceDirRequired indicates the sync pipeline has no directory to read from.
var ErrSourceDirRequired = errors.New("docsync config: source directory is required")

// ErrDestinationDirRequired indicates the sync pipeline has nowhere to write.
var ErrDestinationDirRequired = errors.New("docsync config: destination directory is required")
var ErrPatternInvalid = errors.New("docsync config: source pattern is not a valid glob")
var ErrCatalogFileUnsupported = errors.New("docsync config: catalog file must be a .json, .yaml or .yml path")
var ErrLoggingProviderRequired = errors.New("docsync config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("docsync config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("docsync config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("docsync config: logging format is invalid")

// Config aggregates filesystem paths and adapter bindings for the docsync module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	SourceDir      string
	DestinationDir string
	Pattern        string
	BaseURL        string
	CatalogFile    string
	Parser         ParserConfig
	Logging        LoggingConfig
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a documentation site layout.
func DefaultConfig() Config {
	return Config{
		SourceDir:      "docs/patterns",
		DestinationDir: "content/patterns",
		Pattern:        "*.md",
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.SourceDir) == "" {
		return ErrSourceDirRequired
	}
	if strings.TrimSpace(cfg.DestinationDir) == "" {
		return ErrDestinationDirRequired
	}
	if pattern := strings.TrimSpace(cfg.Pattern); pattern != "" {
		if _, err := filepath.Match(pattern, "probe.md"); err != nil {
			return fmt.Errorf("%w: %s", ErrPatternInvalid, pattern)
		}
	}
	if catalogFile := strings.TrimSpace(cfg.CatalogFile); catalogFile != "" {
		switch strings.ToLower(filepath.Ext(catalogFile)) {
		case ".json", ".yaml", ".yml":
		default:
			return fmt.Errorf("%w: %s", ErrCatalogFileUnsupported, catalogFile)
		}
	}
	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
