package docs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer publishes composed pages into the destination content directory.
// Writes overwrite unconditionally; this is a build-time tool and a failed
// run is corrected by rerunning the whole idempotent pass.
type Writer struct {
	dir string
}

// NewWriter constructs a writer rooted at the destination directory.
func NewWriter(dir string) *Writer {
	return &Writer{dir: filepath.Clean(dir)}
}

// Write stores the composed page at <destination>/<slug>.md and returns the
// written path.
func (w *Writer) Write(slug string, content []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("docs writer: create destination %s: %w", w.dir, err)
	}

	path := filepath.Join(w.dir, slug+".md")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("docs writer: write %s: %w", path, err)
	}
	return path, nil
}

// Path returns the destination path a slug would be written to.
func (w *Writer) Path(slug string) string {
	return filepath.Join(w.dir, slug+".md")
}
