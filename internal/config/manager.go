package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"setup-cli/internal/interfaces"
)

// Manager implements the ConfigManager interface
type Manager struct {
	v     *viper.Viper
	flags map[string]interface{} // Store flag values for precedence
}

// pathKeys lists every setting that names a file relative to root
var pathKeys = []string{
	"values_file",
	"config_template",
	"config_output",
	"config_test_output",
	"env_template",
	"env_output",
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("SETUP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	return &Manager{
		v:     v,
		flags: make(map[string]interface{}),
	}
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("values_file", "app/config-values.yaml")
	v.SetDefault("config_template", "app/config-example.js")
	v.SetDefault("config_output", "app/config.js")
	v.SetDefault("config_test_output", "app/config-test.js")
	v.SetDefault("env_template", "app/public/js/env-vars-example.js")
	v.SetDefault("env_output", "app/public/js/env-vars.js")
}

// Load loads configuration from the specified path. An empty path or a
// missing file leaves env and defaults in effect.
func (m *Manager) Load(path string) (*interfaces.Config, error) {
	if path == "" {
		return m.getConfigFromViper(), nil
	}

	path = expandPath(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m.getConfigFromViper(), nil
	}

	m.v.SetConfigFile(path)

	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return m.getConfigFromViper(), nil
}

// SetFlag sets a flag value for precedence resolution
func (m *Manager) SetFlag(key string, value interface{}) {
	m.flags[key] = value
}

// Resolve applies precedence rules (flags > env > config > defaults) and
// anchors relative paths at root.
func (m *Manager) Resolve() (*interfaces.Config, error) {
	config := m.getConfigFromViper()

	m.applyFlagOverrides(config)

	root, err := filepath.Abs(config.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", config.Root, err)
	}
	config.Root = root

	config.ValuesFile = anchor(root, config.ValuesFile)
	config.ConfigTemplate = anchor(root, config.ConfigTemplate)
	config.ConfigOutput = anchor(root, config.ConfigOutput)
	config.ConfigTestOutput = anchor(root, config.ConfigTestOutput)
	config.EnvTemplate = anchor(root, config.EnvTemplate)
	config.EnvOutput = anchor(root, config.EnvOutput)

	return config, nil
}

// applyFlagOverrides applies flag values over the configuration
func (m *Manager) applyFlagOverrides(config *interfaces.Config) {
	if str, ok := m.stringFlag("root"); ok {
		config.Root = expandPath(str)
	}

	if str, ok := m.stringFlag("values_file"); ok {
		config.ValuesFile = expandPath(str)
	}
}

func (m *Manager) stringFlag(key string) (string, bool) {
	val, exists := m.flags[key]
	if !exists || val == nil {
		return "", false
	}
	str, ok := val.(string)
	if !ok || str == "" {
		return "", false
	}
	return str, true
}

// Validate validates the configuration values
func (m *Manager) Validate(config *interfaces.Config) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	paths := map[string]string{
		"values_file":        config.ValuesFile,
		"config_template":    config.ConfigTemplate,
		"config_output":      config.ConfigOutput,
		"config_test_output": config.ConfigTestOutput,
		"env_template":       config.EnvTemplate,
		"env_output":         config.EnvOutput,
	}
	for _, key := range pathKeys {
		if paths[key] == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}

	outputs := map[string]bool{}
	for _, out := range []string{config.ConfigOutput, config.ConfigTestOutput, config.EnvOutput} {
		if outputs[out] {
			return fmt.Errorf("output path %s is used by more than one target", out)
		}
		outputs[out] = true
	}

	return nil
}

// getConfigFromViper converts viper configuration to Config struct
// This handles env > config > defaults precedence (flags are applied separately)
func (m *Manager) getConfigFromViper() *interfaces.Config {
	return &interfaces.Config{
		Root:             expandPath(m.v.GetString("root")),
		ValuesFile:       expandPath(m.v.GetString("values_file")),
		ConfigTemplate:   expandPath(m.v.GetString("config_template")),
		ConfigOutput:     expandPath(m.v.GetString("config_output")),
		ConfigTestOutput: expandPath(m.v.GetString("config_test_output")),
		EnvTemplate:      expandPath(m.v.GetString("env_template")),
		EnvOutput:        expandPath(m.v.GetString("env_output")),
	}
}

// anchor joins a relative path onto root
func anchor(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// expandPath expands ~ to user home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(homeDir, path[2:])
}
