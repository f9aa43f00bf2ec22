package finding

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TextLocation represents a line range inside a scanned file.
// It is a value object that is immutable and comparable.
// Paths are normalized to use forward slashes and are relative to the
// scanned input root. Line numbers are 1-based and inclusive.
type TextLocation struct {
	path      string
	startLine int
	endLine   int
}

// NewTextLocation creates a new TextLocation with a normalized path.
func NewTextLocation(path string, startLine, endLine int) TextLocation {
	normalized := strings.ReplaceAll(path, "\\", "/")
	normalized = strings.TrimPrefix(normalized, "./")

	return TextLocation{
		path:      normalized,
		startLine: startLine,
		endLine:   endLine,
	}
}

// Path returns the normalized file path.
func (l TextLocation) Path() string { return l.path }

// StartLine returns the first line of the range.
func (l TextLocation) StartLine() int { return l.startLine }

// EndLine returns the last line of the range.
func (l TextLocation) EndLine() int { return l.endLine }

// String returns a human-readable string representation.
func (l TextLocation) String() string {
	if l.startLine > 0 {
		return fmt.Sprintf("%s:%d-%d", l.path, l.startLine, l.endLine)
	}
	return l.path
}

// Equals compares two locations for equality.
func (l TextLocation) Equals(other TextLocation) bool {
	return l == other
}

// Compare orders locations by path, then start line, then end line.
// It returns a negative value when l sorts before other, zero when they
// are equal and a positive value otherwise.
func (l TextLocation) Compare(other TextLocation) int {
	if c := strings.Compare(l.path, other.path); c != 0 {
		return c
	}
	if l.startLine != other.startLine {
		return l.startLine - other.startLine
	}
	return l.endLine - other.endLine
}

// IsValid reports whether the location has a path and a sane line range.
func (l TextLocation) IsValid() bool {
	return l.path != "" && l.startLine >= 1 && l.startLine <= l.endLine
}

// locationJSON is used for JSON marshaling/unmarshaling.
type locationJSON struct {
	Path      string `json:"path"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
}

// MarshalJSON implements json.Marshaler.
func (l TextLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(locationJSON{
		Path:      l.path,
		StartLine: l.startLine,
		EndLine:   l.endLine,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *TextLocation) UnmarshalJSON(data []byte) error {
	var lj locationJSON
	if err := json.Unmarshal(data, &lj); err != nil {
		return err
	}
	*l = NewTextLocation(lj.Path, lj.StartLine, lj.EndLine)
	return nil
}
