package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
	if cfg.SourceDir != "docs/patterns" {
		t.Fatalf("unexpected source dir %q", cfg.SourceDir)
	}
	if cfg.DestinationDir != "content/patterns" {
		t.Fatalf("unexpected destination dir %q", cfg.DestinationDir)
	}
	if cfg.Pattern != "*.md" {
		t.Fatalf("unexpected pattern %q", cfg.Pattern)
	}
}

func TestValidateRequiresDirectories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceDir = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrSourceDirRequired) {
		t.Fatalf("expected ErrSourceDirRequired, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.DestinationDir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrDestinationDirRequired) {
		t.Fatalf("expected ErrDestinationDirRequired, got %v", err)
	}
}

func TestValidateRejectsMalformedPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "[unclosed"
	if err := cfg.Validate(); !errors.Is(err, ErrPatternInvalid) {
		t.Fatalf("expected ErrPatternInvalid, got %v", err)
	}
}

func TestValidateCatalogFileExtension(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CatalogFile = "catalog.toml"
	if err := cfg.Validate(); !errors.Is(err, ErrCatalogFileUnsupported) {
		t.Fatalf("expected ErrCatalogFileUnsupported, got %v", err)
	}

	cfg.CatalogFile = "catalog.yml"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected yml catalog file accepted, got %v", err)
	}
}

func TestValidateLoggingSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = ""
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "json"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected json format accepted, got %v", err)
	}
}
