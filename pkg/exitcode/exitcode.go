// Package exitcode defines exit codes for the scanlens CLI.
package exitcode

// Exit codes follow a standard convention:
// 0 = summary produced, scan usable
// 1 = summary produced, but the whole scan run failed
// 2 = tool/config error
const (
	// Success indicates the summary was produced and the scan run is
	// at least partially usable.
	Success = 0

	// ScanFailed indicates the classifier found every issue to be one
	// failure category (all timeouts or all memory errors), so the run
	// produced no usable results.
	ScanFailed = 1

	// Error indicates a structural, tool or configuration error.
	Error = 2
)

// FromVerdicts converts the classifier verdicts to an exit code.
// A run whose issues were entirely timeouts or entirely memory errors
// is treated as wholly failed rather than partially degraded.
func FromVerdicts(allTimeouts, allMemoryErrors bool) int {
	if allTimeouts || allMemoryErrors {
		return ScanFailed
	}
	return Success
}
