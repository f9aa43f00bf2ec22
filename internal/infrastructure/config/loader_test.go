package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 120, cfg.Scanner.TimeoutSeconds)
	assert.True(t, cfg.Scanner.ParseExpressions)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 120*time.Second, cfg.Timeout())
	assert.Empty(t, cfg.Validate())
}

func TestLoadFromBytes_OverridesDefaults(t *testing.T) {
	yamlConfig := `
scanner:
  timeout_seconds: 300
output:
  format: console
  verbose: true
`

	cfg, err := NewLoader().LoadFromBytes([]byte(yamlConfig))
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Scanner.TimeoutSeconds)
	assert.Equal(t, 300*time.Second, cfg.Timeout())
	assert.Equal(t, FormatConsole, cfg.Output.Format)
	assert.True(t, cfg.Output.Verbose)

	// Untouched sections keep their defaults.
	assert.True(t, cfg.Scanner.ParseExpressions)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromBytes_InvalidFormat(t *testing.T) {
	yamlConfig := `
output:
  format: xml
`

	_, err := NewLoader().LoadFromBytes([]byte(yamlConfig))
	require.Error(t, err)

	var cfgErrs *ConfigErrors
	require.True(t, errors.As(err, &cfgErrs))
	assert.Len(t, cfgErrs.Errors, 1)
	assert.Contains(t, cfgErrs.Error(), "output.format")
}

func TestLoadFromBytes_InvalidTimeout(t *testing.T) {
	_, err := NewLoader().LoadFromBytes([]byte("scanner:\n  timeout_seconds: -5\n"))

	var cfgErrs *ConfigErrors
	require.True(t, errors.As(err, &cfgErrs))
	assert.Contains(t, cfgErrs.Error(), "timeout_seconds")
}

func TestLoadFromBytes_MalformedYAML(t *testing.T) {
	_, err := NewLoader().LoadFromBytes([]byte("scanner: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scanlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scanner:\n  timeout_seconds: 60\n"), 0o600))

	cfg, err := NewLoader().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Scanner.TimeoutSeconds)
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	loader := NewLoaderWithPaths([]string{filepath.Join(t.TempDir(), "missing.yaml")})

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
