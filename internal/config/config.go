// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultModel         = "gemini-2.5-flash"
	DefaultOutputDir     = "."
	DefaultLogLevel      = "info"
	DefaultExportFormat  = "pdf"
	DefaultExportTimeout = 60
)

// Environment variables consulted for the API key, in order
var apiKeyEnv = []string{"GEMINI_API_KEY", "API_KEY"}

// Config represents the CLI configuration that can be loaded from a JSON or
// YAML file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Enhancement
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"` // Gemini API key
	Model  string `json:"model,omitempty" yaml:"model,omitempty" validate:"required"`

	// Session
	Seed string `json:"seed,omitempty" yaml:"seed,omitempty"` // JSON document loaded at start

	// Export
	OutputDir     string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" validate:"required"`
	ExportFormat  string `json:"export_format,omitempty" yaml:"export_format,omitempty" validate:"omitempty,oneof=pdf html"`
	ExportTimeout int    `json:"export_timeout,omitempty" yaml:"export_timeout,omitempty" validate:"gte=0"` // seconds
	ChromePath    string `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty"`

	// Live preview
	PreviewAddr string `json:"preview_addr,omitempty" yaml:"preview_addr,omitempty" validate:"omitempty,hostname_port"`

	// Logging
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFile  string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	Verbose  bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Model:         DefaultModel,
		OutputDir:     DefaultOutputDir,
		ExportFormat:  DefaultExportFormat,
		ExportTimeout: DefaultExportTimeout,
		LogLevel:      DefaultLogLevel,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
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

// ApplyEnv fills the API key from the environment when the file left it empty
func (c *Config) ApplyEnv() {
	if c.APIKey != "" {
		return
	}
	for _, key := range apiKeyEnv {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			c.APIKey = v
			return
		}
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError describes one invalid config field
type FieldError struct {
	Field string
	Rule  string
}

// ValidationError lists every invalid field
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("'%s' fails %s", f.Field, f.Rule))
	}
	return "config error: " + strings.Join(parts, ", ")
}

// Validate checks that the configuration has valid values. Call it after
// MergeWithDefaults so required fields have had a chance to be filled.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config error: %w", err)
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: jsonName(fe.StructField()), Rule: fe.Tag()})
	}
	return out
}

// ExportTimeoutDuration returns the export timeout, falling back to the default
func (c *Config) ExportTimeoutDuration() time.Duration {
	if c.ExportTimeout <= 0 {
		return DefaultExportTimeout * time.Second
	}
	return time.Duration(c.ExportTimeout) * time.Second
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Seed == "" {
		result.Seed = defaults.Seed
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.ExportFormat == "" {
		result.ExportFormat = defaults.ExportFormat
	}
	if result.ExportTimeout == 0 {
		result.ExportTimeout = defaults.ExportTimeout
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.PreviewAddr == "" {
		result.PreviewAddr = defaults.PreviewAddr
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFile == "" {
		result.LogFile = defaults.LogFile
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

var fieldNames = map[string]string{
	"APIKey":        "api_key",
	"Model":         "model",
	"Seed":          "seed",
	"OutputDir":     "output_dir",
	"ExportFormat":  "export_format",
	"ExportTimeout": "export_timeout",
	"ChromePath":    "chrome_path",
	"PreviewAddr":   "preview_addr",
	"LogLevel":      "log_level",
	"LogFile":       "log_file",
}

func jsonName(field string) string {
	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
