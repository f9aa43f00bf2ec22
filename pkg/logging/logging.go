// Package logging constructs the structured logger used by the CLI.
// The normalization core itself stays log-free; only the command layer
// and writers report progress and failures.
package logging

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// envLogLevel overrides the configured log level when set.
const envLogLevel = "SCANLENS_LOG_LEVEL"

// NewLogger creates a named hclog logger writing to stderr. The level
// from the environment wins over the given level; an empty or unknown
// level falls back to info.
func NewLogger(name, level string) hclog.Logger {
	if env := os.Getenv(envLogLevel); env != "" {
		level = env
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:        name,
		DisableTime: true,
		Output:      os.Stderr,
		Level:       logLevel(level),
	})
}

func logLevel(level string) hclog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return hclog.Trace
	case "DEBUG":
		return hclog.Debug
	case "INFO":
		return hclog.Info
	case "WARN":
		return hclog.Warn
	case "ERROR":
		return hclog.Error
	case "OFF":
		return hclog.Off
	default:
		return hclog.Info
	}
}
