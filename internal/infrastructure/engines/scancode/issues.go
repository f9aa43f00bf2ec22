package scancode

import (
	"fmt"
	"strings"

	"github.com/osscompliance/scanlens/internal/domain/issue"
)

// getIssues turns the raw per-file scan errors into path-qualified issue
// records. The scanner reports file paths below the absolute input root
// it was invoked with; that prefix is stripped so messages refer to
// root-relative paths.
//
// The "(File: <path>)" suffix appended here is what the issue classifier
// patterns key on later.
func getIssues(doc *Document, header *Header) ([]issue.Issue, error) {
	prefix, err := inputRootPrefix(header)
	if err != nil {
		return nil, err
	}

	var issues []issue.Issue

	for _, file := range doc.Files {
		for _, scanError := range file.ScanErrors {
			path := strings.TrimPrefix(normalizePath(file.Path), prefix)
			issues = append(issues, issue.New(
				scannerName,
				fmt.Sprintf("%s (File: %s)", scanError, path),
			))
		}
	}

	return issues, nil
}

// inputRootPrefix derives the strip prefix from the run's input option.
// The scanner supports scanning multiple roots at once, but the produced
// paths would then be ambiguous, so only a single root is accepted.
func inputRootPrefix(header *Header) (string, error) {
	input := header.Options.Input
	if len(input) > 1 {
		return "", fmt.Errorf("%w: expected a single input path, found %d", ErrUnsupportedInput, len(input))
	}

	if len(input) == 0 || input[0] == "" {
		return "", nil
	}

	return strings.TrimSuffix(normalizePath(input[0]), "/") + "/", nil
}

func normalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
