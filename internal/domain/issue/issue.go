// Package issue holds the diagnostic records produced while normalizing
// scanner output, and the classifier that rewrites known failure
// signatures into compact canonical messages.
package issue

import (
	"encoding/json"
	"time"
)

// Issue is one diagnostic record attributed to a producing subsystem.
// Issues are value objects; the classifier never patches an issue in
// place but produces rewritten copies.
type Issue struct {
	source    string
	message   string
	severity  Severity
	timestamp time.Time
}

// IssueOption is a functional option for creating issues.
type IssueOption func(*Issue)

// WithSeverity overrides the default ERROR severity.
func WithSeverity(s Severity) IssueOption {
	return func(i *Issue) { i.severity = s }
}

// WithTimestamp sets a specific creation time (useful for testing).
func WithTimestamp(t time.Time) IssueOption {
	return func(i *Issue) { i.timestamp = t.UTC() }
}

// New creates a new Issue with ERROR severity unless overridden.
func New(source, message string, opts ...IssueOption) Issue {
	i := Issue{
		source:    source,
		message:   message,
		severity:  SeverityError,
		timestamp: time.Now().UTC(),
	}

	for _, opt := range opts {
		opt(&i)
	}

	return i
}

// Source returns the name of the subsystem that produced the issue.
func (i Issue) Source() string { return i.source }

// Message returns the issue message.
func (i Issue) Message() string { return i.message }

// Severity returns the issue severity.
func (i Issue) Severity() Severity { return i.severity }

// Timestamp returns the creation time of the issue.
func (i Issue) Timestamp() time.Time { return i.timestamp }

// WithMessage returns a copy of the issue carrying a rewritten message.
// Source, severity and timestamp are preserved.
func (i Issue) WithMessage(message string) Issue {
	i.message = message
	return i
}

// issueJSON is used for JSON marshaling/unmarshaling.
type issueJSON struct {
	Source    string    `json:"source"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

// MarshalJSON implements json.Marshaler.
func (i Issue) MarshalJSON() ([]byte, error) {
	return json.Marshal(issueJSON{
		Source:    i.source,
		Message:   i.message,
		Severity:  i.severity,
		Timestamp: i.timestamp,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Issue) UnmarshalJSON(data []byte) error {
	var ij issueJSON
	if err := json.Unmarshal(data, &ij); err != nil {
		return err
	}

	*i = Issue{
		source:    ij.Source,
		message:   ij.Message,
		severity:  ij.Severity,
		timestamp: ij.Timestamp,
	}
	return nil
}
