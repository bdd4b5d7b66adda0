package config

import (
	"errors"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"task-cli/internal/logging"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	envFiles []string
}

// NewLoader creates a new configuration loader that reads ./.env when present
func NewLoader(envFiles ...string) *Loader {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	return &Loader{
		config:   NewConfig(),
		envFiles: envFiles,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Fill unset environment variables from .env files
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadEnvFiles(); err != nil {
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

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFiles never overrides variables that are already set in the process
func (l *Loader) loadEnvFiles() error {
	for _, file := range l.envFiles {
		err := godotenv.Load(file)
		if err == nil {
			logging.Debug("loaded environment file", "path", file)
			continue
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return &ConfigError{Field: "env_file", Message: file + ": " + err.Error()}
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DBURI          *string
	DBQueryTimeout *time.Duration

	DescriptionMaxLength *int

	NoColor *bool

	Timeout *time.Duration
	Debug   *bool
}

// Apply applies command line overrides to the configuration
func (o *ConfigOverrides) Apply(config *Config) {
	if o.DBURI != nil {
		config.Database.URI = *o.DBURI
	}
	if o.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *o.DBQueryTimeout
	}
	if o.DescriptionMaxLength != nil {
		config.Validation.DescriptionMaxLength = *o.DescriptionMaxLength
	}
	if o.NoColor != nil {
		config.Display.NoColor = *o.NoColor
	}
	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Debug != nil {
		config.Application.Debug = *o.Debug
	}
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
