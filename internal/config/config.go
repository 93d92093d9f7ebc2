// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvStore         = "IHP_STORE"
	EnvStorePath     = "IHP_STORE_PATH"
	EnvOutputDir     = "IHP_OUTPUT_DIR"
	EnvChromeTimeout = "IHP_CHROME_TIMEOUT"
	EnvLogLevel      = "IHP_LOG_LEVEL"
	EnvScale         = "IHP_SCALE"
)

// Config represents the CLI configuration that can be loaded from a JSON or
// YAML file. All fields are optional; missing values use defaults or CLI
// flags.
type Config struct {
	// Storage
	Store     string `json:"store,omitempty" yaml:"store,omitempty" validate:"omitempty,oneof=sqlite memory none"` // Store backend
	StorePath string `json:"store_path,omitempty" yaml:"store_path,omitempty"`                                     // SQLite file

	// Export
	OutputDir     string  `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`                                        // Directory for PDFs
	Scale         float64 `json:"scale,omitempty" yaml:"scale,omitempty" validate:"gte=0,lte=4"`                           // Snapshot device pixel ratio
	PageFormat    string  `json:"page_format,omitempty" yaml:"page_format,omitempty" validate:"omitempty,oneof=A4 Letter"` // Document page size
	ChromeTimeout string  `json:"chrome_timeout,omitempty" yaml:"chrome_timeout,omitempty"`                                // e.g. "30s"

	// Logging
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,oneof=console json"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Store:         "sqlite",
		StorePath:     DefaultStorePath(),
		OutputDir:     ".",
		Scale:         2,
		PageFormat:    "A4",
		ChromeTimeout: "30s",
		LogLevel:      "warn",
		LogFormat:     "console",
	}
}

// DefaultStorePath is ~/.ihp-exam/answers.db, or a path relative to the
// working directory when the home directory is unknown.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".ihp-exam", "answers.db")
	}
	return filepath.Join(home, ".ihp-exam", "answers.db")
}

// LoadConfig loads configuration from a JSON file, or a YAML file when the
// extension is .yaml or .yml.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// FromEnv reads the IHP_* variables through getenv. Unset variables leave
// fields empty.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Store:         getenv(EnvStore),
		StorePath:     getenv(EnvStorePath),
		OutputDir:     getenv(EnvOutputDir),
		ChromeTimeout: getenv(EnvChromeTimeout),
		LogLevel:      getenv(EnvLogLevel),
	}
	if s := getenv(EnvScale); s != "" {
		scale, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s must be a number: %w", EnvScale, err)
		}
		cfg.Scale = scale
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.ChromeTimeout != "" {
		d, err := time.ParseDuration(c.ChromeTimeout)
		if err != nil {
			return fmt.Errorf("config error: 'chrome_timeout' is not a duration: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'chrome_timeout' must be positive")
		}
	}
	return nil
}

// Timeout returns ChromeTimeout as a duration, or zero when unset or
// invalid.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.ChromeTimeout)
	if err != nil {
		return 0
	}
	return d
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.StorePath == "" {
		result.StorePath = defaults.StorePath
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.PageFormat == "" {
		result.PageFormat = defaults.PageFormat
	}
	if result.ChromeTimeout == "" {
		result.ChromeTimeout = defaults.ChromeTimeout
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Float fields: use default if zero
	if result.Scale == 0 {
		result.Scale = defaults.Scale
	}

	return result
}

// Resolve layers the environment over the optional config file over the
// built-in defaults and validates the result. path may be empty.
func Resolve(path string, getenv func(string) string) (Config, error) {
	file := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		file = loaded
	}

	env, err := FromEnv(getenv)
	if err != nil {
		return Config{}, err
	}

	merged := file.MergeWithDefaults(Defaults())
	cfg := env.MergeWithDefaults(merged)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
