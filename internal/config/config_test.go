package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "nexttick.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	assert.Equal(t, 100, cfg.Validation.TitleMaxLength)
	assert.Equal(t, 300, cfg.Validation.DescriptionMaxLength)
	assert.Equal(t, 30, cfg.Validation.FullNameMaxLength)
	assert.Equal(t, 8, cfg.Validation.PasswordMinLength)
	assert.Equal(t, "https://toggl.com/track/forgot-password/", cfg.Application.ForgotPasswordURL)
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("NT_DB_DIR", "/tmp/ntdata")
	t.Setenv("NT_DB_FILENAME", "test.db")
	t.Setenv("NT_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("NT_DATE_FORMAT", "01/02/2006")
	t.Setenv("NT_VALIDATION_TITLE_MAX", "50")
	t.Setenv("NT_FORGOT_PASSWORD_URL", "https://example.com/reset")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/ntdata", cfg.Database.Dir)
	assert.Equal(t, "test.db", cfg.Database.Filename)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "01/02/2006", cfg.Display.DateFormat)
	assert.Equal(t, 50, cfg.Validation.TitleMaxLength)
	assert.Equal(t, "https://example.com/reset", cfg.Application.ForgotPasswordURL)
}

func TestConfig_LoadFromEnvironment_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("NT_DB_QUERY_TIMEOUT", "not-a-duration")
	t.Setenv("NT_VALIDATION_TITLE_MAX", "not-a-number")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 100, cfg.Validation.TitleMaxLength)
}

func TestConfig_GetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/data"
	cfg.Database.Filename = "nt.db"

	assert.Equal(t, filepath.Join("/data", "nt.db"), cfg.GetDatabasePath())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty database dir",
			mutate:  func(c *Config) { c.Database.Dir = "" },
			wantErr: "database directory",
		},
		{
			name:    "empty filename",
			mutate:  func(c *Config) { c.Database.Filename = "" },
			wantErr: "database filename",
		},
		{
			name:    "non-positive query timeout",
			mutate:  func(c *Config) { c.Database.QueryTimeout = 0 },
			wantErr: "query timeout",
		},
		{
			name:    "empty date format",
			mutate:  func(c *Config) { c.Display.DateFormat = "" },
			wantErr: "date format",
		},
		{
			name:    "non-positive title max",
			mutate:  func(c *Config) { c.Validation.TitleMaxLength = 0 },
			wantErr: "title max length",
		},
		{
			name:    "non-positive password min",
			mutate:  func(c *Config) { c.Validation.PasswordMinLength = 0 },
			wantErr: "password min length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
