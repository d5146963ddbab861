package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"setup-cli/internal/interactive"
	"setup-cli/internal/logger"
	"setup-cli/internal/orchestrator"
	"setup-cli/pkg/models"
)

func writeProject(t *testing.T, root string) {
	t.Helper()
	files := map[string]string{
		"app/config-values.yaml":            "defaultValues:\n  projectName: Foo\n  port: 8080\ntestValues:\n  projectName: FooTest\n  port: 9090\n",
		"app/config-example.js":             "exports.projectName = '{{ .projectName }}';\nexports.port = {{ .port }};\n",
		"app/public/js/env-vars-example.js": "window.PORT = {{ .port }};\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestRun_AutomatedOnDisk(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root)

	request := models.NewSetupRequest()
	request.Root = root

	written, err := run(context.Background(), models.ModeAutomated, request, afero.NewOsFs(), logger.Nop())
	require.NoError(t, err)
	assert.Len(t, written, 3)

	data, err := os.ReadFile(filepath.Join(root, "app", "config.js"))
	require.NoError(t, err)
	assert.Equal(t, "exports.projectName = 'Foo';\nexports.port = 8080;\n", string(data))

	data, err = os.ReadFile(filepath.Join(root, "app", "config-test.js"))
	require.NoError(t, err)
	assert.Equal(t, "exports.projectName = 'FooTest';\nexports.port = 9090;\n", string(data))

	data, err = os.ReadFile(filepath.Join(root, "app", "public", "js", "env-vars.js"))
	require.NoError(t, err)
	assert.Equal(t, "window.PORT = 8080;\n", string(data))
}

func TestRun_InteractiveOnDisk(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root)

	request := models.NewSetupRequest()
	request.Root = root

	asker := interactive.NewLineAsker(strings.NewReader("Bar\n\n\n7000\n\n"), &bytes.Buffer{})
	resolver := interactive.NewResolver(asker, logger.Nop())

	_, err := run(context.Background(), models.ModeInteractive, request, afero.NewOsFs(), logger.Nop(), orchestrator.WithResolver(resolver))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "app", "config.js"))
	require.NoError(t, err)
	assert.Equal(t, "exports.projectName = 'Bar';\nexports.port = 7000;\n", string(data))
}

func TestRun_MissingOutputDirectory(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root)

	request := models.NewSetupRequest()
	request.Root = root
	configPath := filepath.Join(root, "setup.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`env_output = "missing/dir/env-vars.js"`), 0644))
	request.ConfigPath = configPath

	_, err := run(context.Background(), models.ModeAutomated, request, afero.NewOsFs(), logger.Nop())

	assert.ErrorIs(t, err, orchestrator.ErrWriteFailed)

	// files written before the failure stay on disk
	_, statErr := os.Stat(filepath.Join(root, "app", "config-test.js"))
	assert.NoError(t, statErr)
}

func TestContractPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	assert.Equal(t, "~", contractPath(homeDir))
	assert.Equal(t, filepath.Join("~", "project", "app"), contractPath(filepath.Join(homeDir, "project", "app")))
	assert.Equal(t, "/elsewhere", contractPath("/elsewhere"))
}
