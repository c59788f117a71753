package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEntryMissing   = errors.New("catalog: no metadata entry for slug")
	ErrKeyInvalid     = errors.New("catalog: key is not a valid slug")
	ErrSourceInvalid  = errors.New("catalog: source file failed schema validation")
	ErrSourceUnusable = errors.New("catalog: source file could not be read")
)

// MissingEntryError captures a lookup miss for a derived slug. The table is
// meant to be exhaustive; a miss aborts the whole sync run.
type MissingEntryError struct {
	Slug string
}

func (e *MissingEntryError) Error() string {
	if e == nil {
		return ErrEntryMissing.Error()
	}
	slug := strings.TrimSpace(e.Slug)
	if slug != "" {
		return fmt.Sprintf("%s: slug=%s", ErrEntryMissing.Error(), slug)
	}
	return ErrEntryMissing.Error()
}

func (e *MissingEntryError) Unwrap() error {
	return ErrEntryMissing
}

// InvalidKeyError captures a catalog key that violates slug rules.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	if e == nil {
		return ErrKeyInvalid.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key != "" {
		return fmt.Sprintf("%s: key=%s", ErrKeyInvalid.Error(), key)
	}
	return ErrKeyInvalid.Error()
}

func (e *InvalidKeyError) Unwrap() error {
	return ErrKeyInvalid
}

// SourceValidationError surfaces schema issues found in an on-disk catalog file.
type SourceValidationError struct {
	Path   string
	Issues []string
	Cause  error
}

func (e *SourceValidationError) Error() string {
	if e == nil {
		return ErrSourceInvalid.Error()
	}
	if len(e.Issues) > 0 {
		return fmt.Sprintf("%s: %s: %s", ErrSourceInvalid.Error(), e.Path, strings.Join(e.Issues, "; "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrSourceInvalid.Error(), e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrSourceInvalid.Error(), e.Path)
}

func (e *SourceValidationError) Unwrap() error {
	return ErrSourceInvalid
}
