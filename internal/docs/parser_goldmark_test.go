package docs

import (
	"strings"
	"testing"

	"github.com/goliatone/go-docsync/pkg/interfaces"
)

func TestGoldmarkParserRendersHeadings(t *testing.T) {
	p := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := p.Parse([]byte("# Composition\n\nSmall pieces, loosely joined.\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), "<h1") {
		t.Fatalf("expected heading in output, got %q", html)
	}
	if !strings.Contains(string(html), `id="composition"`) {
		t.Fatalf("expected auto heading id, got %q", html)
	}
}

func TestGoldmarkParserDefaultExtensions(t *testing.T) {
	p := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := p.Parse([]byte("visit https://example.com now\n\n~~gone~~\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), "<a href=") {
		t.Fatalf("expected linkify output, got %q", html)
	}
	if !strings.Contains(string(html), "<del>") {
		t.Fatalf("expected strikethrough output, got %q", html)
	}
}

func TestGoldmarkParserSafeModeEscapesRawHTML(t *testing.T) {
	p := NewGoldmarkParser(interfaces.ParseOptions{})

	unsafe, err := p.Parse([]byte("<div>raw</div>\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(unsafe), "<div>raw</div>") {
		t.Fatalf("expected raw HTML passthrough by default, got %q", unsafe)
	}

	safe, err := p.ParseWithOptions([]byte("<div>raw</div>\n"), interfaces.ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if strings.Contains(string(safe), "<div>raw</div>") {
		t.Fatalf("expected raw HTML suppressed in safe mode, got %q", safe)
	}
}

func TestCollectExtensionsSkipsUnknownNames(t *testing.T) {
	exts := collectExtensions([]string{"table", "bogus", "TABLE", " footnote "})
	if len(exts) != 2 {
		t.Fatalf("expected 2 extensions, got %d", len(exts))
	}
}
