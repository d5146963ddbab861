package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"setup-cli/internal/interactive"
	"setup-cli/internal/logger"
	"setup-cli/internal/mode"
	"setup-cli/internal/orchestrator"
	"setup-cli/pkg/models"
)

// Run executes one setup run and returns the files it wrote
func Run(ctx context.Context, request *models.SetupRequest) ([]string, error) {
	// the mode flag is read once, before anything else happens
	runMode, err := mode.Detect()
	if err != nil {
		return nil, orchestrator.NewConfigurationError("failed to read the mode flag", err)
	}

	log := logger.New(request.Verbose)
	resolver := interactive.NewResolver(interactive.NewAsker(os.Stdin, os.Stdout), log)

	return run(ctx, runMode, request, afero.NewOsFs(), log, orchestrator.WithResolver(resolver))
}

func run(ctx context.Context, runMode models.Mode, request *models.SetupRequest, fs afero.Fs, log *logger.Logger, opts ...orchestrator.Option) ([]string, error) {
	orch := orchestrator.New(fs, log, opts...)

	cfg, err := orch.LoadConfiguration(request)
	if err != nil {
		return nil, err
	}

	values, err := orch.LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	if err := orch.Run(ctx, runMode, cfg, values); err != nil {
		return nil, err
	}

	var written []string
	for _, target := range orchestrator.Plan(cfg, nil, nil) {
		written = append(written, contractPath(target.Output))
	}
	return written, nil
}

// Preview renders a single target to stdout or the clipboard
func Preview(request *models.SetupRequest, target string, toClipboard bool, stdout io.Writer) error {
	log := logger.New(request.Verbose)
	fs := afero.NewOsFs()
	orch := orchestrator.New(fs, log, orchestrator.WithOutputHandler(orchestrator.NewOutputHandler(fs, stdout)))

	cfg, err := orch.LoadConfiguration(request)
	if err != nil {
		return err
	}

	values, err := orch.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	if err := orch.Preview(target, cfg, values, toClipboard); err != nil {
		return err
	}

	if toClipboard {
		fmt.Fprintf(os.Stderr, "Copied %s to clipboard.\n", target)
	}
	return nil
}

// contractPath converts a full path back to use ~ for the home directory
func contractPath(path string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	homeDirWithSlash := homeDir + string(filepath.Separator)
	pathWithSlash := path + string(filepath.Separator)

	if strings.HasPrefix(pathWithSlash, homeDirWithSlash) {
		relativePath := path[len(homeDir):]
		if relativePath == "" {
			return "~"
		}
		return "~" + relativePath
	}

	return path
}
