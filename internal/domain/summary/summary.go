// Package summary defines the canonical, tool-agnostic result of one
// scanner run: license and copyright findings plus the issues observed
// while producing them.
package summary

import (
	"encoding/json"
	"time"

	"github.com/osscompliance/scanlens/internal/domain/finding"
	"github.com/osscompliance/scanlens/internal/domain/issue"
)

// Summary is the canonical output of normalizing one raw scanner result.
// Findings are deduplicated sets held in deterministic order; issues are
// an ordered sequence reflecting discovery order.
type Summary struct {
	startTime         time.Time
	endTime           time.Time
	licenseFindings   []finding.LicenseFinding
	copyrightFindings []finding.CopyrightFinding
	issues            []issue.Issue
}

// New creates a Summary. License and copyright findings are deduplicated
// and sorted; issues keep their given order.
func New(
	startTime, endTime time.Time,
	licenseFindings []finding.LicenseFinding,
	copyrightFindings []finding.CopyrightFinding,
	issues []issue.Issue,
) *Summary {
	return &Summary{
		startTime:         startTime.UTC(),
		endTime:           endTime.UTC(),
		licenseFindings:   finding.SortLicenseFindings(licenseFindings),
		copyrightFindings: finding.SortCopyrightFindings(copyrightFindings),
		issues:            issues,
	}
}

// StartTime returns when the scanner run started.
func (s *Summary) StartTime() time.Time { return s.startTime }

// EndTime returns when the scanner run ended.
func (s *Summary) EndTime() time.Time { return s.endTime }

// LicenseFindings returns the deduplicated license findings.
func (s *Summary) LicenseFindings() []finding.LicenseFinding { return s.licenseFindings }

// CopyrightFindings returns the deduplicated copyright findings.
func (s *Summary) CopyrightFindings() []finding.CopyrightFinding { return s.copyrightFindings }

// Issues returns the issues observed during the run, in discovery order.
func (s *Summary) Issues() []issue.Issue { return s.issues }

// ReplaceIssues returns a copy of the summary carrying the given issue
// list, typically the output of a classifier pass. The original summary
// is not modified.
func (s *Summary) ReplaceIssues(issues []issue.Issue) *Summary {
	clone := *s
	clone.issues = issues
	return &clone
}

// Licenses returns the distinct license expressions across all findings,
// in finding order.
func (s *Summary) Licenses() []string {
	seen := make(map[string]struct{}, len(s.licenseFindings))
	licenses := make([]string, 0, len(s.licenseFindings))

	for _, f := range s.licenseFindings {
		if _, ok := seen[f.License()]; ok {
			continue
		}
		seen[f.License()] = struct{}{}
		licenses = append(licenses, f.License())
	}

	return licenses
}

// summaryJSON is used for JSON marshaling/unmarshaling.
type summaryJSON struct {
	StartTime         time.Time                  `json:"start_time"`
	EndTime           time.Time                  `json:"end_time"`
	LicenseFindings   []finding.LicenseFinding   `json:"license_findings"`
	CopyrightFindings []finding.CopyrightFinding `json:"copyright_findings"`
	Issues            []issue.Issue              `json:"issues"`
}

// MarshalJSON implements json.Marshaler.
func (s *Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(summaryJSON{
		StartTime:         s.startTime,
		EndTime:           s.endTime,
		LicenseFindings:   s.licenseFindings,
		CopyrightFindings: s.copyrightFindings,
		Issues:            s.issues,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var sj summaryJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}

	*s = Summary{
		startTime:         sj.StartTime,
		endTime:           sj.EndTime,
		licenseFindings:   sj.LicenseFindings,
		copyrightFindings: sj.CopyrightFindings,
		issues:            sj.Issues,
	}
	return nil
}
