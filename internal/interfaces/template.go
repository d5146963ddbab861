package interfaces

import (
	"text/template"

	"setup-cli/pkg/models"
)

// TemplateProcessor handles template compilation and rendering
type TemplateProcessor interface {
	// Compile reads and parses the template at path. Repeated calls for the
	// same path return the same compiled template.
	Compile(path string) (*template.Template, error)

	// Render executes a compiled template against a value set
	Render(tmpl *template.Template, values models.ValueSet) (string, error)
}
