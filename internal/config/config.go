package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"task-cli/internal/repository"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from TASK_CLI_ENV
func GetEnvironment() Environment {
	switch os.Getenv("TASK_CLI_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}

// Config holds all configuration options for the task CLI
type Config struct {
	Environment Environment
	Database    DatabaseConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// DatabaseConfig holds store-related configuration
type DatabaseConfig struct {
	URI            string        `env:"TASK_CLI_DB_URI"`
	QueryTimeout   time.Duration `env:"TASK_CLI_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"TASK_CLI_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	DescriptionMaxLength int `env:"TASK_CLI_DESCRIPTION_MAX"`
}

// DisplayConfig holds display configuration
type DisplayConfig struct {
	NoColor bool `env:"TASK_CLI_NO_COLOR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TASK_CLI_APP_TIMEOUT"`
	Debug   bool          `env:"TASK_CLI_DEBUG"`
}

// DefaultDatabaseURI returns the local SQLite store used when TASK_CLI_DB_URI is unset
func DefaultDatabaseURI() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = "."
	}
	return "sqlite://" + filepath.Join(homeDir, ".task-cli", "tasks.db")
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Environment: GetEnvironment(),
		Database: DatabaseConfig{
			URI:            DefaultDatabaseURI(),
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			DescriptionMaxLength: repository.MaxDescriptionLength,
		},
		Display: DisplayConfig{
			NoColor: false,
		},
		Application: ApplicationConfig{
			Timeout: 5 * time.Minute,
			Debug:   false,
		},
	}
}

// GetQueryTimeout returns the per-operation store timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	c.Environment = GetEnvironment()

	// Database configuration
	if uri := os.Getenv("TASK_CLI_DB_URI"); uri != "" {
		c.Database.URI = uri
	}
	if timeout := os.Getenv("TASK_CLI_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if perms := os.Getenv("TASK_CLI_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Validation configuration
	if maxLen := os.Getenv("TASK_CLI_DESCRIPTION_MAX"); maxLen != "" {
		c.Validation.DescriptionMaxLength = ParseIntWithFallback(maxLen, c.Validation.DescriptionMaxLength)
	}

	// Display configuration
	if noColor := os.Getenv("TASK_CLI_NO_COLOR"); noColor != "" {
		if b, err := strconv.ParseBool(noColor); err == nil {
			c.Display.NoColor = b
		}
	}

	// Application configuration
	if timeout := os.Getenv("TASK_CLI_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if os.Getenv("TASK_CLI_DEBUG") != "" {
		c.Application.Debug = true
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.URI == "" {
		return &ConfigError{Field: "database.uri", Message: "store URI cannot be empty"}
	}
	if _, err := ParseStoreURI(c.Database.URI); err != nil {
		return err
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength > repository.MaxDescriptionLength {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length cannot exceed " + strconv.Itoa(repository.MaxDescriptionLength)}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
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
