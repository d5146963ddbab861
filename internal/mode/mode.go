// Package mode selects between automated and interactive setup runs.
package mode

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"setup-cli/pkg/models"
)

// EnvVar is the process-wide flag consulted once at start
const EnvVar = "APP_ENV"

// AutomatedValue is the flag value that selects automated mode
const AutomatedValue = "test"

type flags struct {
	AppEnv string `env:"APP_ENV"`
}

// Detect reads the mode flag from the process environment
func Detect() (models.Mode, error) {
	return detect(env.Options{})
}

// DetectFrom reads the mode flag from the given environment instead of the
// process environment.
func DetectFrom(environment map[string]string) (models.Mode, error) {
	return detect(env.Options{Environment: environment})
}

func detect(opts env.Options) (models.Mode, error) {
	var f flags
	if err := env.ParseWithOptions(&f, opts); err != nil {
		return models.ModeInteractive, fmt.Errorf("error reading %s: %w", EnvVar, err)
	}

	if f.AppEnv == AutomatedValue {
		return models.ModeAutomated, nil
	}
	return models.ModeInteractive, nil
}
