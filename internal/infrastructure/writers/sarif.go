package writers

import (
	"fmt"
	"io"
	"os"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/osscompliance/scanlens/internal/domain/issue"
	"github.com/osscompliance/scanlens/internal/domain/summary"
)

// informationURI is recorded as the SARIF tool driver's information URI.
const informationURI = "https://github.com/osscompliance/scanlens"

// SARIFWriter writes the summary as a SARIF 2.1.0 report: one result per
// license finding and one per issue.
type SARIFWriter struct {
	out      io.Writer
	toolName string
}

// SARIFOption configures the SARIF writer.
type SARIFOption func(*SARIFWriter)

// WithSARIFOutput sets the output writer.
func WithSARIFOutput(out io.Writer) SARIFOption {
	return func(w *SARIFWriter) { w.out = out }
}

// WithSARIFToolName sets the SARIF driver name.
func WithSARIFToolName(name string) SARIFOption {
	return func(w *SARIFWriter) { w.toolName = name }
}

// NewSARIFWriter creates a new SARIF writer.
func NewSARIFWriter(opts ...SARIFOption) *SARIFWriter {
	w := &SARIFWriter{
		out:      os.Stdout,
		toolName: "scanlens",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the summary as a SARIF report to the configured output.
func (w *SARIFWriter) Write(s *summary.Summary) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(w.toolName, informationURI)

	for _, f := range s.LicenseFindings() {
		rule := run.AddRule(f.License()).
			WithDescription(fmt.Sprintf("License %s detected", f.License()))

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(f.Location().Path())).
				WithRegion(sarif.NewRegion().
					WithStartLine(f.Location().StartLine()).
					WithEndLine(f.Location().EndLine())),
		)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(fmt.Sprintf(
				"License %s detected with score %.1f", f.License(), f.Score(),
			))).
			WithLevel("note").
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}

	for _, iss := range s.Issues() {
		rule := run.AddRule("scan-issue").
			WithDescription("Issue reported while scanning")

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(iss.Message())).
			WithLevel(toSARIFLevel(iss.Severity()))
		run.AddResult(result)
	}

	report.AddRun(run)

	if err := report.PrettyWrite(w.out); err != nil {
		return fmt.Errorf("failed to write SARIF report: %w", err)
	}

	return nil
}

// toSARIFLevel maps an issue severity to a SARIF result level.
func toSARIFLevel(s issue.Severity) string {
	switch s {
	case issue.SeverityWarning:
		return "warning"
	case issue.SeverityHint:
		return "note"
	default:
		return "error"
	}
}
