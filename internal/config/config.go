package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the ritual application
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Validation  ValidationConfig  `yaml:"validation"`
	Score       ScoreConfig       `yaml:"score"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
	Server      ServerConfig      `yaml:"server"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `yaml:"dir" env:"RITUAL_DB_DIR"`
	Filename       string        `yaml:"filename" env:"RITUAL_DB_FILENAME"`
	Driver         string        `yaml:"driver" env:"RITUAL_DB_DRIVER"`
	QueryTimeout   time.Duration `yaml:"query_timeout" env:"RITUAL_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"RITUAL_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"RITUAL_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength       int `yaml:"title_min_length" env:"RITUAL_VALIDATION_TITLE_MIN"`
	TitleMaxLength       int `yaml:"title_max_length" env:"RITUAL_VALIDATION_TITLE_MAX"`
	HolidayNameMaxLength int `yaml:"holiday_name_max_length" env:"RITUAL_VALIDATION_HOLIDAY_NAME_MAX"`
}

// ScoreConfig holds experience point configuration
type ScoreConfig struct {
	PointsPerTask int `yaml:"points_per_task" env:"RITUAL_SCORE_POINTS_PER_TASK"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimestampFormat string `yaml:"timestamp_format" env:"RITUAL_DISPLAY_TIMESTAMP_FORMAT"`
	ShowDone        bool   `yaml:"show_done" env:"RITUAL_DISPLAY_SHOW_DONE"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"RITUAL_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"RITUAL_APP_VERBOSE"`
}

// ServerConfig holds settings for the local HTTP API
type ServerConfig struct {
	Address      string        `yaml:"address" env:"RITUAL_SERVER_ADDR"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"RITUAL_SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"RITUAL_SERVER_WRITE_TIMEOUT"`
}

// DefaultDir returns ~/.ritual, the home of the database and config file.
func DefaultDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".ritual")
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:            DefaultDir(),
			Filename:       "ritual.db",
			Driver:         "sqlite",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TitleMinLength:       1,
			TitleMaxLength:       500,
			HolidayNameMaxLength: 100,
		},
		Score: ScoreConfig{
			PointsPerTask: 10,
		},
		Display: DisplayConfig{
			TimestampFormat: "2006-01-02 15:04:05",
			ShowDone:        true,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Server: ServerConfig{
			Address:      "127.0.0.1:8420",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the previous value is kept.
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("RITUAL_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("RITUAL_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if driver := os.Getenv("RITUAL_DB_DRIVER"); driver != "" {
		c.Database.Driver = driver
	}
	if timeout := os.Getenv("RITUAL_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("RITUAL_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("RITUAL_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Validation configuration
	if minLen := os.Getenv("RITUAL_VALIDATION_TITLE_MIN"); minLen != "" {
		c.Validation.TitleMinLength = ParseIntWithFallback(minLen, c.Validation.TitleMinLength)
	}
	if maxLen := os.Getenv("RITUAL_VALIDATION_TITLE_MAX"); maxLen != "" {
		c.Validation.TitleMaxLength = ParseIntWithFallback(maxLen, c.Validation.TitleMaxLength)
	}
	if maxLen := os.Getenv("RITUAL_VALIDATION_HOLIDAY_NAME_MAX"); maxLen != "" {
		c.Validation.HolidayNameMaxLength = ParseIntWithFallback(maxLen, c.Validation.HolidayNameMaxLength)
	}

	// Score configuration
	if points := os.Getenv("RITUAL_SCORE_POINTS_PER_TASK"); points != "" {
		c.Score.PointsPerTask = ParseIntWithFallback(points, c.Score.PointsPerTask)
	}

	// Display configuration
	if format := os.Getenv("RITUAL_DISPLAY_TIMESTAMP_FORMAT"); format != "" {
		c.Display.TimestampFormat = format
	}
	if showDone := os.Getenv("RITUAL_DISPLAY_SHOW_DONE"); showDone != "" {
		c.Display.ShowDone = ParseBoolWithFallback(showDone, c.Display.ShowDone)
	}

	// Application configuration
	if timeout := os.Getenv("RITUAL_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("RITUAL_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	// Server configuration
	if addr := os.Getenv("RITUAL_SERVER_ADDR"); addr != "" {
		c.Server.Address = addr
	}
	if timeout := os.Getenv("RITUAL_SERVER_READ_TIMEOUT"); timeout != "" {
		c.Server.ReadTimeout = ParseDurationWithFallback(timeout, c.Server.ReadTimeout)
	}
	if timeout := os.Getenv("RITUAL_SERVER_WRITE_TIMEOUT"); timeout != "" {
		c.Server.WriteTimeout = ParseDurationWithFallback(timeout, c.Server.WriteTimeout)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.Driver != "sqlite" && c.Database.Driver != "sqlite3" {
		return &ConfigError{Field: "database.driver", Message: "driver must be sqlite or sqlite3"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be greater than minimum length"}
	}
	if c.Validation.HolidayNameMaxLength < 1 {
		return &ConfigError{Field: "validation.holiday_name_max_length", Message: "holiday name maximum length must be at least 1"}
	}

	if c.Score.PointsPerTask < 1 {
		return &ConfigError{Field: "score.points_per_task", Message: "points per task must be at least 1"}
	}

	if c.Display.TimestampFormat == "" {
		return &ConfigError{Field: "display.timestamp_format", Message: "timestamp format cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if c.Server.Address == "" {
		return &ConfigError{Field: "server.address", Message: "server address cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
