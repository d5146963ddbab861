package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/template"

	"github.com/spf13/afero"
	"setup-cli/internal/catalog"
	"setup-cli/internal/config"
	"setup-cli/internal/interfaces"
	"setup-cli/internal/logger"
	tmplproc "setup-cli/internal/template"
	"setup-cli/pkg/models"
)

// Target names
const (
	TargetPrimary = "primary"
	TargetTest    = "test"
	TargetEnv     = "env"
)

// Target is one file produced by a run
type Target struct {
	Name     string
	Template string
	Output   string
	Values   models.ValueSet
}

// Orchestrator coordinates all components of a setup run. A new
// Orchestrator is used for every run so compiled templates never outlive it.
type Orchestrator struct {
	configManager     interfaces.ConfigManager
	catalogLoader     interfaces.CatalogLoader
	templateProcessor interfaces.TemplateProcessor
	outputHandler     interfaces.OutputHandler
	resolver          interfaces.ValueResolver
	log               *logger.Logger
}

// Option customises an Orchestrator
type Option func(*Orchestrator)

// WithConfigManager replaces the default viper-backed config manager
func WithConfigManager(m interfaces.ConfigManager) Option {
	return func(o *Orchestrator) { o.configManager = m }
}

// WithResolver sets the resolver used in interactive mode
func WithResolver(r interfaces.ValueResolver) Option {
	return func(o *Orchestrator) { o.resolver = r }
}

// WithOutputHandler replaces the output handler
func WithOutputHandler(h interfaces.OutputHandler) Option {
	return func(o *Orchestrator) { o.outputHandler = h }
}

// New creates an orchestrator whose file access goes through fs
func New(fs afero.Fs, log *logger.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		configManager:     config.NewManager(),
		catalogLoader:     catalog.NewLoader(fs),
		templateProcessor: tmplproc.NewProcessor(fs),
		outputHandler:     NewOutputHandler(fs, os.Stdout),
		log:               log,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// LoadConfiguration loads, overrides and validates the setup configuration
func (o *Orchestrator) LoadConfiguration(request *models.SetupRequest) (*interfaces.Config, error) {
	if _, err := o.configManager.Load(request.ConfigPath); err != nil {
		return nil, NewConfigurationError("failed to load configuration", err)
	}

	if request.Root != "" {
		o.configManager.SetFlag("root", request.Root)
	}
	if request.ValuesFile != "" {
		o.configManager.SetFlag("values_file", request.ValuesFile)
	}

	cfg, err := o.configManager.Resolve()
	if err != nil {
		return nil, NewConfigurationError("failed to resolve configuration", err)
	}

	if err := o.configManager.Validate(cfg); err != nil {
		return nil, NewConfigurationError("invalid configuration", err)
	}

	return cfg, nil
}

// LoadCatalog reads the default and test value sets
func (o *Orchestrator) LoadCatalog(cfg *interfaces.Config) (*models.Catalog, error) {
	values, err := o.catalogLoader.Load(cfg.ValuesFile)
	if err != nil {
		return nil, NewCatalogError(cfg.ValuesFile, err)
	}
	return values, nil
}

// Plan lists the targets of a run in write order. values feeds the primary
// config and the environment file; the test config always uses testValues.
func Plan(cfg *interfaces.Config, values models.ValueSet, testValues models.ValueSet) []Target {
	return []Target{
		{Name: TargetPrimary, Template: cfg.ConfigTemplate, Output: cfg.ConfigOutput, Values: values},
		{Name: TargetTest, Template: cfg.ConfigTemplate, Output: cfg.ConfigTestOutput, Values: testValues},
		{Name: TargetEnv, Template: cfg.EnvTemplate, Output: cfg.EnvOutput, Values: values},
	}
}

// Run executes one setup run in the given mode
func (o *Orchestrator) Run(ctx context.Context, mode models.Mode, cfg *interfaces.Config, values *models.Catalog) error {
	o.log.Debug().Str("mode", mode.String()).Str("state", "Idle").Msg("starting setup")

	primaryValues := values.DefaultValues
	if mode == models.ModeInteractive {
		if o.resolver == nil {
			return NewInputError(errors.New("no resolver configured for interactive mode"))
		}

		resolved, err := o.resolver.Resolve(ctx, values.DefaultValues)
		if err != nil {
			return NewInputError(err)
		}
		primaryValues = resolved
	}

	targets := Plan(cfg, primaryValues, values.TestValues)

	o.log.Debug().Str("state", "Rendering").Int("targets", len(targets)).Msg("rendering templates")
	rendered, err := o.renderAll(targets)
	if err != nil {
		return err
	}

	o.log.Debug().Str("state", "Writing").Msg("writing files")
	if err := o.writeAll(targets, rendered); err != nil {
		return err
	}

	o.log.Debug().Str("state", "Done").Msg("setup finished")
	return nil
}

// renderAll renders every target before anything is written
func (o *Orchestrator) renderAll(targets []Target) ([]string, error) {
	rendered := make([]string, len(targets))

	for i, target := range targets {
		tmpl, err := o.compile(target.Template)
		if err != nil {
			return nil, err
		}

		out, err := o.templateProcessor.Render(tmpl, target.Values)
		if err != nil {
			return nil, NewRenderError(target.Template, err)
		}
		rendered[i] = out
	}

	return rendered, nil
}

// writeAll writes targets in order and stops at the first failure
func (o *Orchestrator) writeAll(targets []Target, rendered []string) error {
	for i, target := range targets {
		if err := o.outputHandler.WriteToFile(rendered[i], target.Output); err != nil {
			return NewWriteError(target.Output, err)
		}
		o.log.Info().Str("target", target.Name).Str("path", target.Output).Msg("wrote file")
	}
	return nil
}

func (o *Orchestrator) compile(path string) (*template.Template, error) {
	tmpl, err := o.templateProcessor.Compile(path)
	if err == nil {
		return tmpl, nil
	}
	if errors.Is(err, tmplproc.ErrRead) {
		return nil, NewTemplateReadError(path, err)
	}
	return nil, NewRenderError(path, err)
}

// Preview renders one target with the catalog values and sends it to
// stdout or the clipboard. No file is written.
func (o *Orchestrator) Preview(name string, cfg *interfaces.Config, values *models.Catalog, toClipboard bool) error {
	var target *Target
	for _, t := range Plan(cfg, values.DefaultValues, values.TestValues) {
		if t.Name == name {
			t := t
			target = &t
			break
		}
	}
	if target == nil {
		return NewOutputError(name, fmt.Errorf("unknown target %q (want %s, %s or %s)", name, TargetPrimary, TargetTest, TargetEnv))
	}

	rendered, err := o.renderAll([]Target{*target})
	if err != nil {
		return err
	}

	if toClipboard {
		if err := o.outputHandler.WriteToClipboard(rendered[0]); err != nil {
			return NewOutputError("clipboard", err)
		}
		return nil
	}

	if err := o.outputHandler.WriteToStdout(rendered[0]); err != nil {
		return NewOutputError("stdout", err)
	}
	return nil
}
