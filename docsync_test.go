package docsync

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-docsync/internal/catalog"
)

func newModuleConfig(t *testing.T) Config {
	t.Helper()

	cfg := DefaultConfig()
	cfg.SourceDir = t.TempDir()
	cfg.DestinationDir = t.TempDir()
	return cfg
}

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write source %s: %v", name, err)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceDir = ""
	if _, err := New(cfg); !errors.Is(err, ErrSourceDirRequired) {
		t.Fatalf("expected ErrSourceDirRequired, got %v", err)
	}
}

func TestModuleSyncEndToEnd(t *testing.T) {
	cfg := newModuleConfig(t)
	writeSource(t, cfg.SourceDir, "01-patterns-validation.md", "See (/patterns-errors) for more.\n")

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := module.Sync().Sync(context.Background(), SyncOptions{})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if result.Written != 1 {
		t.Fatalf("expected one page written, got %d", result.Written)
	}

	written, err := os.ReadFile(filepath.Join(cfg.DestinationDir, "validation.md"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(written), "---\ntitle: ") {
		t.Fatalf("expected frontmatter header, got:\n%s", written)
	}
	if !strings.Contains(string(written), "(/patterns/errors)") {
		t.Fatalf("expected rewritten link, got:\n%s", written)
	}
}

func TestModuleUsesBuiltinCatalogByDefault(t *testing.T) {
	cfg := newModuleConfig(t)

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if module.Catalog().Len() == 0 {
		t.Fatal("expected builtin catalog entries")
	}
	if !module.Catalog().Has("validation") {
		t.Fatal("expected builtin validation entry")
	}
}

func TestModuleCatalogOverride(t *testing.T) {
	cfg := newModuleConfig(t)
	writeSource(t, cfg.SourceDir, "01-patterns-caching.md", "Body.\n")

	table, err := catalog.New(map[string]catalog.Entry{
		"caching": {Title: "Caching Strategies", Description: "Invalidate carefully."},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	module, err := New(cfg, WithCatalog(table))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := module.Sync().Sync(context.Background(), SyncOptions{}); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	written, err := os.ReadFile(filepath.Join(cfg.DestinationDir, "caching.md"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(written), "Caching Strategies") {
		t.Fatalf("expected override catalog title, got:\n%s", written)
	}
}

func TestModuleCatalogFileOverride(t *testing.T) {
	cfg := newModuleConfig(t)
	writeSource(t, cfg.SourceDir, "01-patterns-caching.md", "Body.\n")

	catalogPath := filepath.Join(t.TempDir(), "catalog.json")
	payload := `{"caching": {"title": "Caching Strategies", "description": "Invalidate carefully."}}`
	if err := os.WriteFile(catalogPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
	cfg.CatalogFile = catalogPath

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !module.Catalog().Has("caching") {
		t.Fatal("expected catalog loaded from file")
	}
	if module.Catalog().Has("validation") {
		t.Fatal("expected file catalog to replace builtin entries")
	}
}

func TestModuleSyncFailsFastOnMissingEntry(t *testing.T) {
	cfg := newModuleConfig(t)
	writeSource(t, cfg.SourceDir, "01-patterns-unlisted.md", "Body.\n")

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := module.Sync().Sync(context.Background(), SyncOptions{}); !errors.Is(err, catalog.ErrEntryMissing) {
		t.Fatalf("expected ErrEntryMissing, got %v", err)
	}
}

func TestModuleRegisterCommands(t *testing.T) {
	cfg := newModuleConfig(t)

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	set, err := module.RegisterCommands(nil)
	if err != nil {
		t.Fatalf("RegisterCommands: %v", err)
	}
	if set == nil || set.Sync == nil || set.Preview == nil {
		t.Fatalf("expected handler set, got %#v", set)
	}
}
