package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// sourceSchema constrains on-disk catalog files: a non-empty object mapping
// slugs to {title, description} pairs, nothing else.
const sourceSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"minProperties": 1,
	"additionalProperties": {
		"type": "object",
		"required": ["title", "description"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"description": {"type": "string", "minLength": 1}
		},
		"additionalProperties": false
	}
}`

// LoadFile reads a catalog override from a JSON or YAML file, validates it
// against the source schema, and returns the resulting catalog. File entries
// replace the built-in table wholesale; there is no merging.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnusable, path, err)
	}

	normalized, err := normalizeSource(path, data)
	if err != nil {
		return nil, err
	}

	if err := validateSource(path, normalized); err != nil {
		return nil, err
	}

	var entries map[string]Entry
	if err := json.Unmarshal(normalized, &entries); err != nil {
		return nil, &SourceValidationError{Path: path, Cause: err}
	}

	return New(entries)
}

// normalizeSource converts the raw file bytes into canonical JSON so a single
// schema check covers both encodings.
func normalizeSource(path string, data []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if !json.Valid(data) {
			return nil, &SourceValidationError{Path: path, Cause: errors.New("invalid JSON")}
		}
		return data, nil
	case ".yaml", ".yml":
		var decoded any
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, &SourceValidationError{Path: path, Cause: err}
		}
		encoded, err := json.Marshal(decoded)
		if err != nil {
			return nil, &SourceValidationError{Path: path, Cause: err}
		}
		return encoded, nil
	default:
		return nil, fmt.Errorf("%w: %s: unsupported extension %q", ErrSourceUnusable, path, filepath.Ext(path))
	}
}

func validateSource(path string, encoded []byte) error {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("catalog.json", strings.NewReader(sourceSchema)); err != nil {
		return fmt.Errorf("catalog: compile schema: %w", err)
	}
	schema, err := compiler.Compile("catalog.json")
	if err != nil {
		return fmt.Errorf("catalog: compile schema: %w", err)
	}

	var value any
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	if err := decoder.Decode(&value); err != nil {
		return &SourceValidationError{Path: path, Cause: err}
	}

	if err := schema.Validate(value); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &SourceValidationError{
				Path:   path,
				Issues: collectIssues(validationErr),
				Cause:  err,
			}
		}
		return &SourceValidationError{Path: path, Cause: err}
	}
	return nil
}

func collectIssues(err *jsonschema.ValidationError) []string {
	if err == nil {
		return nil
	}
	issues := []string{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "#"
			}
			issues = append(issues, fmt.Sprintf("%s: %s", location, strings.TrimSpace(node.Message)))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
