// Package catalog reads the value catalog that supplies defaultValues and
// testValues to a setup run.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
	"setup-cli/pkg/models"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrMissingSection    = errors.New("catalog section missing")
)

// document is the on-disk shape of a catalog in every supported format
type document struct {
	DefaultValues models.ValueSet `yaml:"defaultValues" toml:"defaultValues" json:"defaultValues"`
	TestValues    models.ValueSet `yaml:"testValues" toml:"testValues" json:"testValues"`
}

// Loader implements the CatalogLoader interface
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader reading from fs
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads the catalog at path, picking the decoder from the extension
func (l *Loader) Load(path string) (*models.Catalog, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var doc document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	case ".json":
		err = decodeJSON(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	if doc.DefaultValues == nil {
		return nil, fmt.Errorf("%w: defaultValues in %s", ErrMissingSection, path)
	}
	if doc.TestValues == nil {
		return nil, fmt.Errorf("%w: testValues in %s", ErrMissingSection, path)
	}

	return &models.Catalog{
		DefaultValues: doc.DefaultValues,
		TestValues:    doc.TestValues,
	}, nil
}

// decodeJSON decodes a catalog, turning whole-number floats into int64 so
// ports render as 3350 rather than 3350.0 in any float-aware helper.
func decodeJSON(data []byte, doc *document) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(doc); err != nil {
		return err
	}
	normalizeNumbers(doc.DefaultValues)
	normalizeNumbers(doc.TestValues)
	return nil
}

func normalizeNumbers(values models.ValueSet) {
	for k, v := range values {
		f, ok := v.(float64)
		if ok && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			values[k] = int64(f)
		}
	}
}
