// Package writers renders a normalized scan summary as JSON, SARIF or
// human-readable console output.
package writers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/osscompliance/scanlens/internal/domain/summary"
)

// JSONWriter writes a machine-readable report envelope around the
// summary: tool identification, a unique run ID and the generation time.
type JSONWriter struct {
	out         io.Writer
	pretty      bool
	toolName    string
	toolVersion string
}

// JSONOption configures the JSON writer.
type JSONOption func(*JSONWriter)

// WithJSONOutput sets the output writer.
func WithJSONOutput(out io.Writer) JSONOption {
	return func(w *JSONWriter) { w.out = out }
}

// WithJSONPretty enables indented output.
func WithJSONPretty(pretty bool) JSONOption {
	return func(w *JSONWriter) { w.pretty = pretty }
}

// WithJSONToolInfo sets tool name and version recorded in the envelope.
func WithJSONToolInfo(name, version string) JSONOption {
	return func(w *JSONWriter) {
		w.toolName = name
		w.toolVersion = version
	}
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(opts ...JSONOption) *JSONWriter {
	w := &JSONWriter{
		out:         os.Stdout,
		pretty:      true,
		toolName:    "scanlens",
		toolVersion: "dev",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// reportJSON is the envelope written around the summary.
type reportJSON struct {
	Tool        toolJSON         `json:"tool"`
	RunID       string           `json:"run_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Summary     *summary.Summary `json:"summary"`
}

type toolJSON struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Write renders the summary report to the configured output.
func (w *JSONWriter) Write(s *summary.Summary) error {
	report := reportJSON{
		Tool: toolJSON{
			Name:    w.toolName,
			Version: w.toolVersion,
		},
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Summary:     s,
	}

	encoder := json.NewEncoder(w.out)
	if w.pretty {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}

	return nil
}
