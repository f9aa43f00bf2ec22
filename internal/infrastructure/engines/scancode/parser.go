package scancode

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/osscompliance/scanlens/pkg/pathutil"
)

// timestampLayout matches the scanner's custom timestamp format. The
// fraction may be shorter than six digits or absent; timestamps carry no
// zone and are interpreted as UTC.
const timestampLayout = "2006-01-02T150405.999999"

// Parse decodes one raw ScanCode result document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResult, err)
	}

	return &doc, nil
}

// ParseFile reads and decodes a raw ScanCode result from a file.
func ParseFile(path string) (*Document, error) {
	cleanPath, err := pathutil.ValidatePath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid result path: %w", err)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 - path is validated above
	if err != nil {
		return nil, fmt.Errorf("failed to read result file %s: %w", cleanPath, err)
	}

	return Parse(data)
}

// Header returns the document's single run header. A document is expected
// to describe exactly one scanner invocation.
func (d *Document) Header() (*Header, error) {
	if len(d.Headers) != 1 {
		return nil, fmt.Errorf("%w: expected exactly 1 header, found %d", ErrMalformedResult, len(d.Headers))
	}
	return &d.Headers[0], nil
}

// StartTime returns the parsed start timestamp of the run.
func (h *Header) StartTime() (time.Time, error) {
	return parseTimestamp("start_timestamp", h.StartTimestamp)
}

// EndTime returns the parsed end timestamp of the run.
func (h *Header) EndTime() (time.Time, error) {
	return parseTimestamp("end_timestamp", h.EndTimestamp)
}

func parseTimestamp(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: missing %s", ErrInvalidTimestamp, field)
	}

	t, err := time.ParseInLocation(timestampLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q does not match %q", ErrInvalidTimestamp, field, value, timestampLayout)
	}

	return t, nil
}
