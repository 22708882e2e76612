package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the NextTick application
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// DatabaseConfig holds record-store-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"NT_DB_DIR"`
	Filename       string        `env:"NT_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"NT_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"NT_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"NT_DB_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `env:"NT_DATE_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength       int `env:"NT_VALIDATION_TITLE_MAX"`
	DescriptionMaxLength int `env:"NT_VALIDATION_DESCRIPTION_MAX"`
	FullNameMaxLength    int `env:"NT_VALIDATION_FULL_NAME_MAX"`
	PasswordMinLength    int `env:"NT_VALIDATION_PASSWORD_MIN"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout           time.Duration `env:"NT_APP_TIMEOUT"`
	ForgotPasswordURL string        `env:"NT_FORGOT_PASSWORD_URL"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".nexttick")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "nexttick.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			DateFormat: "2006-01-02",
		},
		Validation: ValidationConfig{
			TitleMaxLength:       100,
			DescriptionMaxLength: 300,
			FullNameMaxLength:    30,
			PasswordMinLength:    8,
		},
		Application: ApplicationConfig{
			Timeout:           60 * time.Second,
			ForgotPasswordURL: "https://toggl.com/track/forgot-password/",
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

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("NT_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("NT_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("NT_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("NT_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("NT_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Display configuration
	if format := os.Getenv("NT_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	// Validation configuration
	if maxLen := os.Getenv("NT_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}
	if maxLen := os.Getenv("NT_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.DescriptionMaxLength = n
		}
	}
	if maxLen := os.Getenv("NT_VALIDATION_FULL_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.FullNameMaxLength = n
		}
	}
	if minLen := os.Getenv("NT_VALIDATION_PASSWORD_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.PasswordMinLength = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("NT_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if url := os.Getenv("NT_FORGOT_PASSWORD_URL"); url != "" {
		c.Application.ForgotPasswordURL = url
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return fmt.Errorf("database directory cannot be empty")
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename cannot be empty")
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database query timeout must be positive")
	}
	if c.Database.WriteTimeout <= 0 {
		return fmt.Errorf("database write timeout must be positive")
	}
	if c.Display.DateFormat == "" {
		return fmt.Errorf("date format cannot be empty")
	}
	if c.Validation.TitleMaxLength <= 0 {
		return fmt.Errorf("title max length must be positive")
	}
	if c.Validation.DescriptionMaxLength < 0 {
		return fmt.Errorf("description max length cannot be negative")
	}
	if c.Validation.PasswordMinLength <= 0 {
		return fmt.Errorf("password min length must be positive")
	}
	if c.Application.Timeout <= 0 {
		return fmt.Errorf("application timeout must be positive")
	}
	return nil
}

// Load creates a configuration with defaults, applies environment
// overrides, and validates the result
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to load configuration from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
