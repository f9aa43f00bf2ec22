package writers

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/osscompliance/scanlens/internal/domain/issue"
	"github.com/osscompliance/scanlens/internal/domain/summary"
)

// ConsoleWriter writes a human-readable summary to the console.
type ConsoleWriter struct {
	out     io.Writer
	color   bool
	verbose bool

	// Color functions
	red    func(a ...interface{}) string
	yellow func(a ...interface{}) string
	green  func(a ...interface{}) string
	cyan   func(a ...interface{}) string
	bold   func(a ...interface{}) string
	dim    func(a ...interface{}) string
}

// ConsoleOption configures the console writer.
type ConsoleOption func(*ConsoleWriter)

// WithConsoleOutput sets the output writer.
func WithConsoleOutput(out io.Writer) ConsoleOption {
	return func(w *ConsoleWriter) { w.out = out }
}

// WithConsoleColor enables or disables colored output.
func WithConsoleColor(enabled bool) ConsoleOption {
	return func(w *ConsoleWriter) { w.color = enabled }
}

// WithConsoleVerbose enables per-finding output instead of the compact
// per-license overview.
func WithConsoleVerbose(verbose bool) ConsoleOption {
	return func(w *ConsoleWriter) { w.verbose = verbose }
}

// NewConsoleWriter creates a new console writer.
func NewConsoleWriter(opts ...ConsoleOption) *ConsoleWriter {
	w := &ConsoleWriter{
		out:   os.Stdout,
		color: true,
	}

	for _, opt := range opts {
		opt(w)
	}

	w.initColors()
	return w
}

// initColors initializes color functions based on the color setting.
func (w *ConsoleWriter) initColors() {
	if w.color {
		w.red = color.New(color.FgRed).SprintFunc()
		w.yellow = color.New(color.FgYellow).SprintFunc()
		w.green = color.New(color.FgGreen).SprintFunc()
		w.cyan = color.New(color.FgCyan).SprintFunc()
		w.bold = color.New(color.Bold).SprintFunc()
		w.dim = color.New(color.Faint).SprintFunc()
	} else {
		plain := fmt.Sprint
		w.red = plain
		w.yellow = plain
		w.green = plain
		w.cyan = plain
		w.bold = plain
		w.dim = plain
	}
}

// Write renders the summary to the configured output.
func (w *ConsoleWriter) Write(s *summary.Summary) error {
	duration := s.EndTime().Sub(s.StartTime())

	fmt.Fprintf(w.out, "%s\n", w.bold("Scan summary"))
	fmt.Fprintf(w.out, "  Started:  %s\n", s.StartTime().Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w.out, "  Finished: %s %s\n\n", s.EndTime().Format("2006-01-02 15:04:05 MST"), w.dim(fmt.Sprintf("(%s)", duration)))

	w.writeLicenses(s)
	w.writeCopyrights(s)
	w.writeIssues(s)

	return nil
}

func (w *ConsoleWriter) writeLicenses(s *summary.Summary) {
	findings := s.LicenseFindings()
	if len(findings) == 0 {
		fmt.Fprintf(w.out, "%s\n\n", w.dim("No licenses detected."))
		return
	}

	fmt.Fprintf(w.out, "%s\n", w.bold(fmt.Sprintf("Licenses (%d findings)", len(findings))))

	if w.verbose {
		for _, f := range findings {
			fmt.Fprintf(w.out, "  %s %s %s\n",
				w.green(f.License()),
				f.Location().String(),
				w.dim(fmt.Sprintf("score %.1f", f.Score())))
		}
		fmt.Fprintln(w.out)
		return
	}

	counts := make(map[string]int, len(findings))
	for _, f := range findings {
		counts[f.License()]++
	}

	for _, license := range s.Licenses() {
		fmt.Fprintf(w.out, "  %s %s\n", w.green(license), w.dim(fmt.Sprintf("(%d)", counts[license])))
	}
	fmt.Fprintln(w.out)
}

func (w *ConsoleWriter) writeCopyrights(s *summary.Summary) {
	findings := s.CopyrightFindings()
	if len(findings) == 0 {
		return
	}

	fmt.Fprintf(w.out, "%s\n", w.bold(fmt.Sprintf("Copyrights (%d findings)", len(findings))))

	if w.verbose {
		for _, f := range findings {
			fmt.Fprintf(w.out, "  %s %s\n", f.Statement(), w.dim(f.Location().String()))
		}
	}
	fmt.Fprintln(w.out)
}

func (w *ConsoleWriter) writeIssues(s *summary.Summary) {
	issues := s.Issues()
	if len(issues) == 0 {
		fmt.Fprintf(w.out, "%s\n", w.green("No issues."))
		return
	}

	fmt.Fprintf(w.out, "%s\n", w.bold(fmt.Sprintf("Issues (%d)", len(issues))))
	for _, iss := range issues {
		marker := w.red(iss.Severity().String())
		switch iss.Severity() {
		case issue.SeverityWarning:
			marker = w.yellow(iss.Severity().String())
		case issue.SeverityHint:
			marker = w.cyan(iss.Severity().String())
		}
		fmt.Fprintf(w.out, "  [%s] %s: %s\n", marker, iss.Source(), iss.Message())
	}
}
