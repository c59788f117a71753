package docs

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LoaderConfig configures how source articles are discovered.
type LoaderConfig struct {
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "*.md").
	Pattern string
}

// Loader discovers source articles within a single flat directory. Discovery
// order is deterministic: results are sorted by filename.
type Loader struct {
	fs      fs.FS
	pattern string
}

// SourceFile carries a discovered article's name, raw bytes, and modification time.
type SourceFile struct {
	Name    string
	Data    []byte
	ModTime time.Time
}

// NewLoader constructs a Loader using the provided filesystem and configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}

	return &Loader{
		fs:      filesystem,
		pattern: pattern,
	}
}

// LoadDirectory reads every matching file in the source directory. The
// pattern argument overrides the configured glob when non-empty.
func (l *Loader) LoadDirectory(ctx context.Context, pattern string) ([]*SourceFile, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if strings.TrimSpace(pattern) == "" {
		pattern = l.pattern
	}

	entries, err := fs.ReadDir(l.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("docs loader: read source directory: %w", err)
	}

	var files []*SourceFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		match, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("docs loader: match pattern %q: %w", pattern, err)
		}
		if !match {
			continue
		}

		file, err := l.loadFile(entry.Name())
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// LoadFile reads a single source article by name.
func (l *Loader) LoadFile(ctx context.Context, name string) (*SourceFile, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return l.loadFile(name)
}

func (l *Loader) loadFile(name string) (*SourceFile, error) {
	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("docs loader: read %s: %w", name, err)
	}

	info, err := fs.Stat(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("docs loader: stat %s: %w", name, err)
	}

	return &SourceFile{
		Name:    name,
		Data:    data,
		ModTime: info.ModTime(),
	}, nil
}
