package issue

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity represents how serious an issue is. The zero value is
// SeverityError, which is the default for tool-reported scan errors.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityHint
)

var severityNames = map[Severity]string{
	SeverityError:   "ERROR",
	SeverityWarning: "WARNING",
	SeverityHint:    "HINT",
}

var severityValues = map[string]Severity{
	"ERROR":   SeverityError,
	"WARNING": SeverityWarning,
	"HINT":    SeverityHint,
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "ERROR"
}

// ParseSeverity converts a string to a Severity value.
// The comparison is case-insensitive.
func ParseSeverity(s string) (Severity, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if sev, ok := severityValues[upper]; ok {
		return sev, nil
	}
	return SeverityError, fmt.Errorf("invalid severity: %q", s)
}

// MarshalJSON implements json.Marshaler.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	sev, err := ParseSeverity(name)
	if err != nil {
		return err
	}

	*s = sev
	return nil
}
