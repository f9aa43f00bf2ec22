package finding

import (
	"encoding/json"
	"sort"
	"strings"
)

// CopyrightFinding represents one normalized copyright detection: a
// free-text copyright statement anchored to a text location. It is a
// value object - immutable and compared by value.
type CopyrightFinding struct {
	statement string
	location  TextLocation
}

// NewCopyrightFinding creates a new CopyrightFinding.
func NewCopyrightFinding(statement string, location TextLocation) CopyrightFinding {
	return CopyrightFinding{
		statement: strings.TrimSpace(statement),
		location:  location,
	}
}

// Statement returns the copyright statement text.
func (f CopyrightFinding) Statement() string { return f.statement }

// Location returns the text location of the detection.
func (f CopyrightFinding) Location() TextLocation { return f.location }

// Equals compares two copyright findings for equality.
func (f CopyrightFinding) Equals(other CopyrightFinding) bool {
	return f == other
}

// Compare orders findings by location, then statement.
func (f CopyrightFinding) Compare(other CopyrightFinding) int {
	if c := f.location.Compare(other.location); c != 0 {
		return c
	}
	return strings.Compare(f.statement, other.statement)
}

// copyrightFindingJSON is used for JSON marshaling/unmarshaling.
type copyrightFindingJSON struct {
	Statement string       `json:"statement"`
	Location  TextLocation `json:"location"`
}

// MarshalJSON implements json.Marshaler.
func (f CopyrightFinding) MarshalJSON() ([]byte, error) {
	return json.Marshal(copyrightFindingJSON{
		Statement: f.statement,
		Location:  f.location,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *CopyrightFinding) UnmarshalJSON(data []byte) error {
	var fj copyrightFindingJSON
	if err := json.Unmarshal(data, &fj); err != nil {
		return err
	}
	*f = NewCopyrightFinding(fj.Statement, fj.Location)
	return nil
}

// SortCopyrightFindings deduplicates the given findings and returns them
// in a deterministic order. The input slice is not modified.
func SortCopyrightFindings(findings []CopyrightFinding) []CopyrightFinding {
	seen := make(map[CopyrightFinding]struct{}, len(findings))
	result := make([]CopyrightFinding, 0, len(findings))

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
