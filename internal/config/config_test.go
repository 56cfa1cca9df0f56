package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"model": "gemini-2.0-flash",
		"output_dir": "out",
		"preview_addr": "127.0.0.1:8080",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "127.0.0.1:8080", cfg.PreviewAddr)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
model: gemini-2.5-pro
output_dir: exports
export_format: html
log_level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "exports", cfg.OutputDir)
	assert.Equal(t, "html", cfg.ExportFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "config.yml", "model: [unclosed")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(c *Config)
		field string
		rule  string
	}{
		{"missing model", func(c *Config) { c.Model = "" }, "model", "required"},
		{"missing output dir", func(c *Config) { c.OutputDir = "" }, "output_dir", "required"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level", "oneof"},
		{"bad export format", func(c *Config) { c.ExportFormat = "docx" }, "export_format", "oneof"},
		{"bad preview addr", func(c *Config) { c.PreviewAddr = "not an address" }, "preview_addr", "hostname_port"},
		{"negative timeout", func(c *Config) { c.ExportTimeout = -1 }, "export_timeout", "gte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mod(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Equal(t, tt.rule, verr.Fields[0].Rule)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Model: "custom", OutputDir: ""}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "custom", merged.Model)
	assert.Equal(t, DefaultOutputDir, merged.OutputDir)
	assert.Equal(t, DefaultLogLevel, merged.LogLevel)
	assert.Equal(t, DefaultExportFormat, merged.ExportFormat)
	assert.Equal(t, DefaultExportTimeout, merged.ExportTimeout)
	// Original untouched
	assert.Empty(t, cfg.OutputDir)
}

func TestApplyEnv(t *testing.T) {
	t.Run("primary variable", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "gemini-key")
		t.Setenv("API_KEY", "fallback-key")
		cfg := Config{}
		cfg.ApplyEnv()
		assert.Equal(t, "gemini-key", cfg.APIKey)
	})

	t.Run("fallback variable", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("API_KEY", "fallback-key")
		cfg := Config{}
		cfg.ApplyEnv()
		assert.Equal(t, "fallback-key", cfg.APIKey)
	})

	t.Run("file wins", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "gemini-key")
		cfg := Config{APIKey: "from-file"}
		cfg.ApplyEnv()
		assert.Equal(t, "from-file", cfg.APIKey)
	})
}

func TestExportTimeoutDuration(t *testing.T) {
	assert.Equal(t, 60*time.Second, (&Config{}).ExportTimeoutDuration())
	assert.Equal(t, 5*time.Second, (&Config{ExportTimeout: 5}).ExportTimeoutDuration())
}
