package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osscompliance/scanlens/pkg/pathutil"
)

// Default config file locations, checked in order.
var defaultConfigPaths = []string{
	".scanlens.yaml",
	"scanlens.yaml",
}

// Loader handles loading and merging configuration.
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader with the default search paths.
func NewLoader() *Loader {
	return &Loader{configPaths: defaultConfigPaths}
}

// NewLoaderWithPaths creates a loader with custom config paths.
func NewLoaderWithPaths(paths []string) *Loader {
	return &Loader{configPaths: paths}
}

// Load loads configuration from the first available config file.
// Returns the default config if no file is found.
func (l *Loader) Load() (*Config, error) {
	for _, path := range l.configPaths {
		if fileExists(path) {
			return l.LoadFromFile(path)
		}
	}

	return DefaultConfig(), nil
}

// LoadFromFile loads configuration from a specific file.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	cleanPath, err := pathutil.ValidatePath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 - path is validated above
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cleanPath, err)
	}

	return l.LoadFromBytes(data)
}

// LoadFromBytes loads configuration from YAML bytes on top of the
// defaults.
func (l *Loader) LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigErrors{Errors: errs}
	}

	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
