package scancode

import (
	"github.com/osscompliance/scanlens/internal/domain/summary"
)

// GenerateSummary normalizes one parsed ScanCode result document into
// the canonical summary. Structural problems (missing or duplicated
// header, unparseable timestamps, multi-root input) fail the call;
// per-file scan errors reported by the tool become issues alongside the
// findings of the files that did scan.
//
// The summary's issue list starts with any format version warning,
// followed by the per-file issues in discovery order.
func GenerateSummary(doc *Document, parseExpressions bool) (*summary.Summary, error) {
	header, err := doc.Header()
	if err != nil {
		return nil, err
	}

	startTime, err := header.StartTime()
	if err != nil {
		return nil, err
	}

	endTime, err := header.EndTime()
	if err != nil {
		return nil, err
	}

	issues := checkFormatVersion(header)

	fileIssues, err := getIssues(doc, header)
	if err != nil {
		return nil, err
	}
	issues = append(issues, fileIssues...)

	return summary.New(
		startTime,
		endTime,
		getLicenseFindings(doc, parseExpressions),
		getCopyrightFindings(doc, header),
		issues,
	), nil
}

// GenerateSummaryFromBytes parses raw result data and normalizes it in
// one step.
func GenerateSummaryFromBytes(data []byte, parseExpressions bool) (*summary.Summary, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return GenerateSummary(doc, parseExpressions)
}
