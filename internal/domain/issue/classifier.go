package issue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The scanner reports per-file failures as free text. Both patterns rely
// on the "(File: <path>)" suffix that the issue extractor appends to
// every raw scan error.
var (
	timeoutErrorRegexp = regexp.MustCompile(
		`^(?:ERROR: for scanner: (?:\w+):\n)?` +
			`ERROR: Processing interrupted: timeout after (?P<timeout>\d+) seconds\. \(File: (?P<file>.+)\)$`,
	)

	unknownErrorRegexp = regexp.MustCompile(
		`(?s)^(?:ERROR: for scanner: (?:\w+):\n)?` +
			`ERROR: Unknown error:\n.+\n(?P<type>\w+Error):\s*(?P<message>.*?)\s*\(File: (?P<file>.+)\)$`,
	)
)

// memoryErrorType is the error type the scanner's runtime raises on
// memory exhaustion.
const memoryErrorType = "MemoryError"

// MapTimeoutErrors rewrites issues whose message matches the scanner's
// timeout signature with the given timeout value into a compact canonical
// form and collapses duplicates by message text. Issues that do not match,
// or that report a different timeout value, pass through unchanged.
//
// It returns the rewritten list and true if all issues in the non-empty
// input list were timeout errors, which indicates the scan run as a whole
// should be treated as failed. The pass is idempotent: canonical messages
// no longer match the detection pattern.
func MapTimeoutErrors(issues []Issue, timeout time.Duration) ([]Issue, bool) {
	if len(issues) == 0 {
		return nil, false
	}

	onlyTimeoutErrors := true
	mapped := make([]Issue, 0, len(issues))

	for _, iss := range issues {
		if m := matchGroups(timeoutErrorRegexp, iss.Message()); m != nil {
			seconds, err := strconv.Atoi(m["timeout"])
			if err == nil && time.Duration(seconds)*time.Second == timeout {
				mapped = append(mapped, iss.WithMessage(fmt.Sprintf(
					"ERROR: Timeout after %d seconds while scanning file '%s'.", seconds, m["file"],
				)))
				continue
			}
		}

		onlyTimeoutErrors = false
		mapped = append(mapped, iss)
	}

	return dedupeByMessage(mapped), onlyTimeoutErrors
}

// MapUnknownErrors rewrites issues whose message matches the scanner's
// unhandled-exception signature into a compact canonical form and
// collapses duplicates by message text. Memory exhaustion gets its own
// canonical form; any other recognized error type keeps its trimmed
// message body. Issues that do not match pass through unchanged.
//
// It returns the rewritten list and true if all issues in the non-empty
// input list were memory errors. The pass is idempotent.
func MapUnknownErrors(issues []Issue) ([]Issue, bool) {
	if len(issues) == 0 {
		return nil, false
	}

	onlyMemoryErrors := true
	mapped := make([]Issue, 0, len(issues))

	for _, iss := range issues {
		m := matchGroups(unknownErrorRegexp, iss.Message())
		if m == nil {
			onlyMemoryErrors = false
			mapped = append(mapped, iss)
			continue
		}

		if m["type"] == memoryErrorType {
			mapped = append(mapped, iss.WithMessage(fmt.Sprintf(
				"ERROR: MemoryError while scanning file '%s'.", m["file"],
			)))
			continue
		}

		onlyMemoryErrors = false
		mapped = append(mapped, iss.WithMessage(fmt.Sprintf(
			"ERROR: %s while scanning file '%s' (%s).", m["type"], m["file"], strings.TrimSpace(m["message"]),
		)))
	}

	return dedupeByMessage(mapped), onlyMemoryErrors
}

// matchGroups returns the named capture groups of the first match of re
// in s, or nil if s does not match.
func matchGroups(re *regexp.Regexp, s string) map[string]string {
	match := re.FindStringSubmatch(s)
	if match == nil {
		return nil
	}

	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = match[i]
		}
	}

	return groups
}

// dedupeByMessage collapses issues sharing the exact same message text,
// keeping the first occurrence. Order is otherwise preserved.
func dedupeByMessage(issues []Issue) []Issue {
	seen := make(map[string]struct{}, len(issues))
	result := make([]Issue, 0, len(issues))

	for _, iss := range issues {
		if _, ok := seen[iss.Message()]; ok {
			continue
		}
		seen[iss.Message()] = struct{}{}
		result = append(result, iss)
	}

	return result
}
