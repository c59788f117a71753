// Package catalog holds the hand-maintained slug → metadata table consumed by
// the sync workflow. The table is authored alongside the article corpus; a
// source file whose slug has no entry is an authoring error and aborts the
// whole run rather than shipping an unlabeled page.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	slug "github.com/goliatone/go-slug"
)

// Entry pairs the published title and description for a topic slug.
type Entry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Validate ensures the entry carries the required metadata pair.
func (e Entry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Description, validation.Required),
	)
}

// Catalog is the immutable lookup table defined at process start. It is safe
// for concurrent reads; entries never change during a run.
type Catalog struct {
	entries map[string]Entry
}

// New builds a catalog from the supplied entries, validating every key and
// entry up front so defects surface at construction rather than mid-run.
func New(entries map[string]Entry) (*Catalog, error) {
	out := make(map[string]Entry, len(entries))
	for key, entry := range entries {
		key = strings.TrimSpace(key)
		if !slug.IsValid(key) {
			return nil, &InvalidKeyError{Key: key}
		}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: entry %s: %w", key, err)
		}
		out[key] = entry
	}
	return &Catalog{entries: out}, nil
}

// MustNew builds a catalog and panics on invalid input. Reserved for the
// built-in table, which is covered by tests.
func MustNew(entries map[string]Entry) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the metadata entry for the supplied slug. A missing entry is
// a MissingEntryError wrapping ErrEntryMissing so callers can abort fail-fast.
func (c *Catalog) Lookup(slugKey string) (Entry, error) {
	if c == nil {
		return Entry{}, &MissingEntryError{Slug: slugKey}
	}
	entry, ok := c.entries[slugKey]
	if !ok {
		return Entry{}, &MissingEntryError{Slug: slugKey}
	}
	return entry, nil
}

// Has reports whether the catalog carries an entry for the slug.
func (c *Catalog) Has(slugKey string) bool {
	if c == nil {
		return false
	}
	_, ok := c.entries[slugKey]
	return ok
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Slugs returns every catalog key in sorted order.
func (c *Catalog) Slugs() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
