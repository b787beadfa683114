package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

// Schema returns the JSON schema that dataset documents must satisfy.
func Schema() []byte {
	return append([]byte(nil), schemaJSON...)
}

// ErrEmptyDocument is returned for empty input.
var ErrEmptyDocument = errors.New("dataset: empty document")

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "dataset: schema validation failed: " + strings.Join(e.Problems, "; ")
}

// Validate checks YAML or JSON bytes against the dataset schema.
// A bare list of episodes is accepted as shorthand for {episodes: [...]}.
func Validate(data []byte) error {
	doc, err := decodeGeneric(data)
	if err != nil {
		return err
	}
	return validateDocument(doc)
}

func decodeGeneric(data []byte) (any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyDocument
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dataset: parse: %w", err)
	}
	if list, ok := doc.([]any); ok {
		doc = map[string]any{"episodes": list}
	}
	return doc, nil
}

func validateDocument(doc any) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("dataset: schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.Problems = append(verr.Problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return verr
}
