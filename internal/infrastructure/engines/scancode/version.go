package scancode

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/osscompliance/scanlens/internal/domain/issue"
)

// MaxSupportedFormatMajorVersion is the highest output format major
// version this normalizer was written against. Newer majors are parsed
// best-effort with a warning; minor and patch bumps are assumed to be
// forward-compatible and pass silently.
const MaxSupportedFormatMajorVersion = 2

// checkFormatVersion inspects the header's declared output format version
// and returns a warning issue when the document declares an incompatible
// newer major version. Older tool versions did not declare a version at
// all, in which case no check is performed. Processing always continues.
func checkFormatVersion(header *Header) []issue.Issue {
	major, ok := formatMajorVersion(header)
	if !ok || major <= MaxSupportedFormatMajorVersion {
		return nil
	}

	return []issue.Issue{
		issue.New(
			scannerName,
			fmt.Sprintf(
				"The output format version %s exceeds the supported version %d. Results may be incomplete or incorrect.",
				header.OutputFormatVersion, MaxSupportedFormatMajorVersion,
			),
			issue.WithSeverity(issue.SeverityWarning),
		),
	}
}

// usesCopyrightField reports whether the document's format generation
// names the copyright statement field "copyright" (2.0.0 and later)
// instead of "value".
func usesCopyrightField(header *Header) bool {
	major, ok := formatMajorVersion(header)
	return ok && major >= 2
}

// formatMajorVersion extracts the major component of the declared output
// format version. It returns false when no version is declared or the
// declared version is not a semantic version.
func formatMajorVersion(header *Header) (int, bool) {
	declared := strings.TrimSpace(header.OutputFormatVersion)
	if declared == "" {
		return 0, false
	}

	canonical := "v" + strings.TrimPrefix(declared, "v")
	if !semver.IsValid(canonical) {
		return 0, false
	}

	major, err := strconv.Atoi(strings.TrimPrefix(semver.Major(canonical), "v"))
	if err != nil {
		return 0, false
	}

	return major, true
}
