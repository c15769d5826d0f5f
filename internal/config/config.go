package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yigit/coursescheduler/internal/pkg/apperrors"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string        `yaml:"port" env:"SERVER_PORT"`
		Mode            string        `yaml:"mode" env:"SERVER_MODE"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
		MaxHeaderBytes  int           `yaml:"max_header_bytes" env:"SERVER_MAX_HEADER_BYTES"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Greeting struct {
		Runtime string `yaml:"runtime" env:"GREETING_RUNTIME"`
	} `yaml:"greeting"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	file, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults and environment only
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ShutdownTimeout = 10 * time.Second
	config.Server.MaxHeaderBytes = 1 << 20

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Greeting.Runtime = "Go"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("%w: server port is required", apperrors.ErrValidationFailed)
	}

	if config.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: server shutdown timeout must be positive", apperrors.ErrValidationFailed)
	}

	if config.Server.MaxHeaderBytes <= 0 {
		return fmt.Errorf("%w: server max header bytes must be positive", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(config.Greeting.Runtime) == "" {
		return fmt.Errorf("%w: greeting runtime is required", apperrors.ErrValidationFailed)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("%w: unsupported log format %q", apperrors.ErrValidationFailed, config.Logging.Format)
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}

// PrettyLogs reports whether logs should be written in human-readable form
func (c *Config) PrettyLogs() bool {
	return strings.ToLower(c.Logging.Format) == "text"
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
