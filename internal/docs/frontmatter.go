package docs

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// header is the canonical frontmatter block injected into every published
// page. Field order matters: title first, description second.
type header struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ExistingHeader captures a frontmatter block already present in a source
// document. Sources are expected to be raw bodies; when a header is found it
// is stripped so the catalog stays authoritative.
type ExistingHeader struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ComposeFrontMatter renders the delimited header block for a page, followed
// by a blank line so the body can be appended directly.
func ComposeFrontMatter(title, description string) ([]byte, error) {
	encoded, err := yaml.Marshal(header{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("docs: encode frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')
	buf.Write(encoded)
	buf.WriteString(frontMatterDelimiter)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}

// StripFrontMatter removes a pre-existing header from source bytes. It returns
// the body without delimiters and, when a header was present, its parsed
// contents so callers can surface the discrepancy.
func StripFrontMatter(source []byte) ([]byte, *ExistingHeader, error) {
	var existing ExistingHeader
	body, err := frontmatter.Parse(bytes.NewReader(source), &existing)
	if err != nil {
		return nil, nil, fmt.Errorf("docs: parse frontmatter: %w", err)
	}
	if len(body) == len(source) {
		return body, nil, nil
	}
	return body, &existing, nil
}
