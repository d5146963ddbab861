package interfaces

import (
	"context"
	"testing"
	"text/template"

	"setup-cli/pkg/models"
)

// Mock implementations to verify interfaces are properly defined
type mockConfigManager struct{}

func (m *mockConfigManager) Load(path string) (*Config, error) {
	return &Config{}, nil
}

func (m *mockConfigManager) SetFlag(key string, value interface{}) {}

func (m *mockConfigManager) Resolve() (*Config, error) {
	return &Config{}, nil
}

func (m *mockConfigManager) Validate(config *Config) error {
	return nil
}

type mockTemplateProcessor struct{}

func (m *mockTemplateProcessor) Compile(path string) (*template.Template, error) {
	return template.New(path), nil
}

func (m *mockTemplateProcessor) Render(tmpl *template.Template, values models.ValueSet) (string, error) {
	return "test output", nil
}

type mockOutputHandler struct{}

func (m *mockOutputHandler) WriteToFile(content string, path string) error {
	return nil
}

func (m *mockOutputHandler) WriteToStdout(content string) error {
	return nil
}

func (m *mockOutputHandler) WriteToClipboard(content string) error {
	return nil
}

type mockCatalogLoader struct{}

func (m *mockCatalogLoader) Load(path string) (*models.Catalog, error) {
	return &models.Catalog{}, nil
}

type mockValueResolver struct{}

func (m *mockValueResolver) Resolve(ctx context.Context, defaults models.ValueSet) (models.ValueSet, error) {
	return defaults.Clone(), nil
}

// Test that mock implementations satisfy interfaces
func TestInterfaceImplementations(t *testing.T) {
	var _ ConfigManager = &mockConfigManager{}
	var _ TemplateProcessor = &mockTemplateProcessor{}
	var _ OutputHandler = &mockOutputHandler{}
	var _ CatalogLoader = &mockCatalogLoader{}
	var _ ValueResolver = &mockValueResolver{}
}
