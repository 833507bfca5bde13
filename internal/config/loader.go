package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the environment variable that points at a config file.
const ConfigFileEnv = "RITUAL_CONFIG"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	filePath string
}

// NewLoader creates a new configuration loader. The config file is taken
// from RITUAL_CONFIG, falling back to ~/.ritual/config.yaml.
func NewLoader() *Loader {
	path := os.Getenv(ConfigFileEnv)
	if path == "" {
		path = filepath.Join(DefaultDir(), "config.yaml")
	}
	return &Loader{
		config:   NewConfig(),
		filePath: path,
	}
}

// WithConfigFile makes the loader read path instead of the default file.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.filePath = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if it exists
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// loadFile decodes the YAML file over the current values. Keys missing from
// the file keep their defaults; a missing file is not an error.
func (l *Loader) loadFile() error {
	if l.filePath == "" {
		return nil
	}
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", l.filePath, err)
	}
	if err := yaml.Unmarshal(data, l.config); err != nil {
		return &ConfigError{Field: "file", Message: fmt.Sprintf("cannot parse %s: %v", l.filePath, err)}
	}
	return nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir          *string
	DBFilename     *string
	DBDriver       *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Score overrides
	PointsPerTask *int

	// Display overrides
	ShowDone *bool

	// Application overrides
	Timeout *time.Duration
	Verbose *bool

	// Server overrides
	ServerAddress *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBDriver != nil {
		config.Database.Driver = *overrides.DBDriver
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *overrides.DBWriteTimeout
	}

	if overrides.PointsPerTask != nil {
		config.Score.PointsPerTask = *overrides.PointsPerTask
	}

	if overrides.ShowDone != nil {
		config.Display.ShowDone = *overrides.ShowDone
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}

	if overrides.ServerAddress != nil {
		config.Server.Address = *overrides.ServerAddress
	}
}
