package template

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/afero"
	"setup-cli/pkg/models"
)

var (
	ErrRead    = errors.New("template read failed")
	ErrParse   = errors.New("template parse failed")
	ErrExecute = errors.New("template execution failed")
)

// Processor implements the TemplateProcessor interface. Compiled templates
// are cached by path for the lifetime of the Processor, which is one run.
type Processor struct {
	fs       afero.Fs
	compiled map[string]*template.Template
}

// NewProcessor creates a new template processor reading from fs
func NewProcessor(fs afero.Fs) *Processor {
	return &Processor{
		fs:       fs,
		compiled: make(map[string]*template.Template),
	}
}

// Compile loads and parses the template at path, returning the cached
// template when path was already compiled.
func (p *Processor) Compile(path string) (*template.Template, error) {
	if tmpl, ok := p.compiled[path]; ok {
		return tmpl, nil
	}

	content, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	tmpl, err := p.parse(filepath.Base(path), string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	p.compiled[path] = tmpl
	return tmpl, nil
}

// parse creates a template with the helper functions registered
func (p *Processor) parse(name, content string) (*template.Template, error) {
	return template.New(name).Funcs(sprig.TxtFuncMap()).Parse(content)
}

// Render executes a template with the provided values
func (p *Processor) Render(tmpl *template.Template, values models.ValueSet) (string, error) {
	var buf strings.Builder

	if err := tmpl.Execute(&buf, map[string]interface{}(values)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, err)
	}

	return buf.String(), nil
}
