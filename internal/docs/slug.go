package docs

import (
	"path/filepath"
	"regexp"
	"strings"

	slug "github.com/goliatone/go-slug"
)

// orderPrefix matches the numeric ordering prefix source files carry,
// e.g. the "01-" in 01-patterns-validation.md.
var orderPrefix = regexp.MustCompile(`^[0-9]+-`)

// namespacePrefix is the optional topic namespace stripped from filenames.
const namespacePrefix = "patterns-"

// ResolveSlug derives the topic slug from a source filename: the numeric
// ordering prefix and the optional namespace prefix are stripped, and the
// extension removed. No further normalisation is applied; a malformed
// filename produces a slug that fails the catalog lookup downstream, which
// is where the defect is meant to surface.
func ResolveSlug(filename string) string {
	name := filepath.Base(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = orderPrefix.ReplaceAllString(name, "")
	return strings.TrimPrefix(name, namespacePrefix)
}

// IsValidSlug reports whether the value satisfies the default slug rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
