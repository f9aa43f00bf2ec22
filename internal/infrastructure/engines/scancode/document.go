// Package scancode normalizes the raw JSON output of the ScanCode
// license and copyright scanner into the canonical summary shape.
package scancode

import (
	"encoding/json"
	"fmt"
)

// Document is the parsed form of one ScanCode invocation's JSON output.
// It is never mutated after parsing.
type Document struct {
	Headers []Header `json:"headers"`
	Files   []File   `json:"files"`
}

// Header carries the run metadata ScanCode emits once per invocation.
type Header struct {
	ToolName            string  `json:"tool_name"`
	ToolVersion         string  `json:"tool_version"`
	OutputFormatVersion string  `json:"output_format_version"`
	StartTimestamp      string  `json:"start_timestamp"`
	EndTimestamp        string  `json:"end_timestamp"`
	Options             Options `json:"options"`
}

// Options holds the subset of the scanner's command line options the
// normalizer needs.
type Options struct {
	Input StringList `json:"input"`
}

// StringList accepts either a single JSON string or an array of strings.
// Older ScanCode versions emit the input option as a scalar, newer ones
// as a list.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("input option is neither a string nor a string list: %w", err)
	}

	*l = StringList(many)
	return nil
}

// File is one scanned filesystem entry with its detections.
type File struct {
	Path       string           `json:"path"`
	Type       string           `json:"type"`
	Licenses   []LicenseEntry   `json:"licenses"`
	Copyrights []CopyrightEntry `json:"copyrights"`
	ScanErrors []string         `json:"scan_errors"`
}

// LicenseEntry is one raw license detection in a file.
type LicenseEntry struct {
	Key            string      `json:"key"`
	Score          float64     `json:"score"`
	SpdxLicenseKey string      `json:"spdx_license_key"`
	StartLine      int         `json:"start_line"`
	EndLine        int         `json:"end_line"`
	MatchedRule    MatchedRule `json:"matched_rule"`
}

// MatchedRule describes the scanner rule behind a license detection.
// Multi-license rules report the same combined expression for every
// license key they cover.
type MatchedRule struct {
	Identifier        string `json:"identifier"`
	LicenseExpression string `json:"license_expression"`
}

// CopyrightEntry is one raw copyright detection in a file. The statement
// field was renamed between output format versions, so both names are
// mapped and the extractor picks by version.
type CopyrightEntry struct {
	Value     string `json:"value"`
	Copyright string `json:"copyright"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
}

// statement returns the copyright statement using the field name of the
// given output format generation.
func (e CopyrightEntry) statement(copyrightField bool) string {
	if copyrightField {
		return e.Copyright
	}
	return e.Value
}
