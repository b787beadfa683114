package dataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggchart"
)

// ErrPathNotFound is returned by ParseJSONPath when the path selects nothing.
var ErrPathNotFound = errors.New("dataset: json path not found")

// Load reads, validates and decodes the dataset file at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ggchart.Logger().Debug("dataset loaded", "path", path, "episodes", len(ds.Episodes))
	return ds, nil
}

// Parse validates and decodes a YAML or JSON dataset document and fills
// in the derived columns.
func Parse(data []byte) (*Dataset, error) {
	doc, err := decodeGeneric(data)
	if err != nil {
		return nil, err
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	// Re-encode the generic tree so bare episode lists decode the same way
	// as full documents.
	normalized, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("dataset: normalize: %w", err)
	}
	ds := &Dataset{}
	if err := yaml.Unmarshal(normalized, ds); err != nil {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	ds.Derive()
	return ds, nil
}

// ParseJSONPath selects a sub-document of a larger JSON payload with a
// gjson path and parses it. The selection may be a dataset object or a
// bare array of episodes. An empty path parses the whole payload.
func ParseJSONPath(data []byte, path string) (*Dataset, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("dataset: invalid JSON")
	}
	if path == "" {
		return Parse(data)
	}
	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return nil, fmt.Errorf("%w: %q", ErrPathNotFound, path)
	}
	if !result.IsObject() && !result.IsArray() {
		return nil, fmt.Errorf("dataset: json path %q selects a %s, want object or array", path, result.Type)
	}
	return Parse([]byte(result.Raw))
}
