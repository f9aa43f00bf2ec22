package scancode

import (
	"github.com/osscompliance/scanlens/internal/domain/finding"
	"github.com/osscompliance/scanlens/internal/domain/spdx"
)

const (
	// scannerName identifies this scanner in issue records.
	scannerName = "ScanCode"

	// licenseRefNamespace namespaces fallback identifiers for rule keys
	// unknown to the SPDX identifier list.
	licenseRefNamespace = "scancode"

	// fileType marks regular files in the scanner's file list;
	// directories and symlinks carry no detections worth normalizing.
	fileType = "file"
)

// licenseMatch is the grouping key for license detections. Detections
// sharing an expression, line range and score are one detection event
// that a multi-license rule reported once per covered license key.
type licenseMatch struct {
	expression string
	startLine  int
	endLine    int
	score      float64
}

// getLicenseFindings walks the per-file license detections and produces
// the deduplicated set of license findings. When parseExpressions is
// true the matched rule's combined expression is used as the grouping
// expression, otherwise the detection's bare license key.
//
// Rule keys inside each grouped expression are substituted with their
// resolved SPDX identifiers, then the whole set is passed through the
// license/exception association.
func getLicenseFindings(doc *Document, parseExpressions bool) []finding.LicenseFinding {
	var findings []finding.LicenseFinding

	for _, file := range doc.Files {
		if file.Type != fileType {
			continue
		}

		// Explicit multimap keyed by the match tuple; map order is
		// irrelevant because the result set is sorted afterwards.
		matches := make(map[licenseMatch][]LicenseEntry)

		for _, license := range file.Licenses {
			expression := license.Key
			if parseExpressions && license.MatchedRule.LicenseExpression != "" {
				expression = license.MatchedRule.LicenseExpression
			}

			match := licenseMatch{
				expression: expression,
				startLine:  license.StartLine,
				endLine:    license.EndLine,
				score:      license.Score,
			}
			matches[match] = append(matches[match], license)
		}

		for match, entries := range matches {
			replacements := make(map[string]string, len(entries))
			for _, entry := range entries {
				replacements[entry.Key] = spdxLicenseID(entry)
			}

			findings = append(findings, finding.NewLicenseFinding(
				spdx.ReplaceLicenseKeys(match.expression, replacements),
				finding.NewTextLocation(file.Path, match.startLine, match.endLine),
				match.score,
			))
		}
	}

	return spdx.AssociateLicensesWithExceptions(findings)
}

// spdxLicenseID resolves a detection to a stable SPDX identifier. The
// scanner's own SPDX key wins when it is a valid short identifier;
// otherwise the rule key is turned into a deterministic LicenseRef
// fallback so every detection resolves to some collision-free id.
func spdxLicenseID(entry LicenseEntry) string {
	if id := spdx.ToIdentifier(entry.SpdxLicenseKey, true); id != "" {
		return id
	}
	return spdx.LicenseRef(licenseRefNamespace, entry.Key)
}

// getCopyrightFindings walks the per-file copyright detections and
// produces the deduplicated set of copyright findings. Unlike licenses,
// copyrights are not grouped or merged.
func getCopyrightFindings(doc *Document, header *Header) []finding.CopyrightFinding {
	copyrightField := usesCopyrightField(header)

	var findings []finding.CopyrightFinding

	for _, file := range doc.Files {
		for _, copyright := range file.Copyrights {
			statement := copyright.statement(copyrightField)
			if statement == "" {
				continue
			}

			findings = append(findings, finding.NewCopyrightFinding(
				statement,
				finding.NewTextLocation(file.Path, copyright.StartLine, copyright.EndLine),
			))
		}
	}

	return finding.SortCopyrightFindings(findings)
}
