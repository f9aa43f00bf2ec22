package finding

import (
	"encoding/json"
	"sort"
	"strings"
)

// LicenseFinding represents one normalized license detection: an SPDX-style
// license expression anchored to a text location, with the scanner's
// confidence score. It is a value object - immutable and compared by value.
type LicenseFinding struct {
	license  string
	location TextLocation
	score    float64
}

// NewLicenseFinding creates a new LicenseFinding.
func NewLicenseFinding(license string, location TextLocation, score float64) LicenseFinding {
	return LicenseFinding{
		license:  strings.TrimSpace(license),
		location: location,
		score:    score,
	}
}

// License returns the SPDX-style license expression.
func (f LicenseFinding) License() string { return f.license }

// Location returns the text location of the detection.
func (f LicenseFinding) Location() TextLocation { return f.location }

// Score returns the scanner's confidence score in the range 0-100.
func (f LicenseFinding) Score() float64 { return f.score }

// Equals compares two license findings for equality.
func (f LicenseFinding) Equals(other LicenseFinding) bool {
	return f == other
}

// Compare orders findings by location, then license, then score.
func (f LicenseFinding) Compare(other LicenseFinding) int {
	if c := f.location.Compare(other.location); c != 0 {
		return c
	}
	if c := strings.Compare(f.license, other.license); c != 0 {
		return c
	}
	switch {
	case f.score < other.score:
		return -1
	case f.score > other.score:
		return 1
	default:
		return 0
	}
}

// licenseFindingJSON is used for JSON marshaling/unmarshaling.
type licenseFindingJSON struct {
	License  string       `json:"license"`
	Location TextLocation `json:"location"`
	Score    float64      `json:"score"`
}

// MarshalJSON implements json.Marshaler.
func (f LicenseFinding) MarshalJSON() ([]byte, error) {
	return json.Marshal(licenseFindingJSON{
		License:  f.license,
		Location: f.location,
		Score:    f.score,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *LicenseFinding) UnmarshalJSON(data []byte) error {
	var fj licenseFindingJSON
	if err := json.Unmarshal(data, &fj); err != nil {
		return err
	}
	*f = NewLicenseFinding(fj.License, fj.Location, fj.Score)
	return nil
}

// SortLicenseFindings deduplicates the given findings and returns them in
// a deterministic order. The input slice is not modified. Result-set order
// carries no meaning of its own; sorting only makes output reproducible.
func SortLicenseFindings(findings []LicenseFinding) []LicenseFinding {
	seen := make(map[LicenseFinding]struct{}, len(findings))
	result := make([]LicenseFinding, 0, len(findings))

	for _, f := range findings {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		result = append(result, f)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Compare(result[j]) < 0
	})

	return result
}
