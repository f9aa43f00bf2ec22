// Package config loads and validates the scanlens configuration.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Output format names accepted by the output configuration.
const (
	FormatJSON    = "json"
	FormatSARIF   = "sarif"
	FormatConsole = "console"
)

// Config represents the complete scanlens configuration.
type Config struct {
	Scanner ScannerConfig `yaml:"scanner" json:"scanner"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Log     LogConfig     `yaml:"log" json:"log"`
}

// ScannerConfig describes the scanner invocation whose results are
// being normalized.
type ScannerConfig struct {
	// TimeoutSeconds is the per-file timeout the scanner was configured
	// with. The timeout classifier only canonicalizes timeout messages
	// reporting exactly this value.
	TimeoutSeconds int `yaml:"timeout_seconds" json:"timeout_seconds"`

	// ParseExpressions selects whether detections are grouped by the
	// matched rule's combined license expression or by bare license key.
	ParseExpressions bool `yaml:"parse_expressions" json:"parse_expressions"`
}

// OutputConfig controls how the summary is rendered.
type OutputConfig struct {
	Format  string `yaml:"format" json:"format"`
	NoColor bool   `yaml:"no_color" json:"no_color"`
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// LogConfig controls diagnostic logging of the CLI itself.
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

// DefaultConfig returns the configuration used when no config file is
// present. The timeout default matches the scanner's own default.
func DefaultConfig() *Config {
	return &Config{
		Scanner: ScannerConfig{
			TimeoutSeconds:   120,
			ParseExpressions: true,
		},
		Output: OutputConfig{
			Format: FormatJSON,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Timeout returns the configured scanner timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Scanner.TimeoutSeconds) * time.Second
}

// Validate checks the configuration for consistency and returns all
// problems found.
func (c *Config) Validate() []error {
	var errs []error

	if c.Scanner.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("scanner.timeout_seconds must be positive, got %d", c.Scanner.TimeoutSeconds))
	}

	switch c.Output.Format {
	case FormatJSON, FormatSARIF, FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("output.format must be one of json, sarif, console; got %q", c.Output.Format))
	}

	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "off", "":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not a known level", c.Log.Level))
	}

	return errs
}

// ConfigErrors wraps multiple configuration errors.
type ConfigErrors struct {
	Errors []error
}

func (e *ConfigErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no configuration errors"
	}

	messages := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		messages[i] = err.Error()
	}

	return fmt.Sprintf("invalid configuration: %s", strings.Join(messages, "; "))
}
