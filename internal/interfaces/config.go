package interfaces

// Config represents the setup configuration: where templates, values and
// outputs live.
type Config struct {
	Root             string `toml:"root"`
	ValuesFile       string `toml:"values_file"`
	ConfigTemplate   string `toml:"config_template"`
	ConfigOutput     string `toml:"config_output"`
	ConfigTestOutput string `toml:"config_test_output"`
	EnvTemplate      string `toml:"env_template"`
	EnvOutput        string `toml:"env_output"`
}

// ConfigManager handles configuration loading and resolution
type ConfigManager interface {
	// Load loads configuration from the specified path
	Load(path string) (*Config, error)

	// SetFlag records a command-line override for key
	SetFlag(key string, value interface{})

	// Resolve applies precedence rules (flags > env > config > defaults)
	Resolve() (*Config, error)

	// Validate validates the configuration values
	Validate(config *Config) error
}
