package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osscompliance/scanlens/internal/domain/issue"
	"github.com/osscompliance/scanlens/internal/domain/summary"
	"github.com/osscompliance/scanlens/internal/infrastructure/config"
	"github.com/osscompliance/scanlens/internal/infrastructure/engines/scancode"
	"github.com/osscompliance/scanlens/internal/infrastructure/writers"
	"github.com/osscompliance/scanlens/pkg/exitcode"
	"github.com/osscompliance/scanlens/pkg/logging"
	"github.com/osscompliance/scanlens/pkg/pathutil"
)

// summarize command flags
var (
	timeoutSeconds int
	rawKeys        bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <result.json>",
	Short: "Normalize one raw ScanCode result into a canonical summary",
	Long: `Summarize reads the JSON output of one ScanCode invocation, extracts
license and copyright findings, collects per-file scan errors as issues
and classifies known failure signatures (timeouts, memory exhaustion).

The exit code is 1 when every issue turns out to be the same failure
category, meaning the scan run as a whole produced no usable result.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "scanner timeout in seconds (overrides config)")
	summarizeCmd.Flags().BoolVar(&rawKeys, "raw-keys", false, "group findings by bare license key instead of rule expressions")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.NewLogger("scanlens", cfg.Log.Level)

	if timeoutSeconds > 0 {
		cfg.Scanner.TimeoutSeconds = timeoutSeconds
	}
	if rawKeys {
		cfg.Scanner.ParseExpressions = false
	}
	if formatFlag != "" {
		cfg.Output.Format = formatFlag
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return &config.ConfigErrors{Errors: errs}
	}

	logger.Debug("reading scan result", "path", args[0])

	doc, err := scancode.ParseFile(args[0])
	if err != nil {
		return err
	}

	s, err := scancode.GenerateSummary(doc, cfg.Scanner.ParseExpressions)
	if err != nil {
		return err
	}

	issues, allTimeouts := issue.MapTimeoutErrors(s.Issues(), cfg.Timeout())
	issues, allMemoryErrors := issue.MapUnknownErrors(issues)
	s = s.ReplaceIssues(issues)

	logger.Info("summary generated",
		"licenses", len(s.LicenseFindings()),
		"copyrights", len(s.CopyrightFindings()),
		"issues", len(s.Issues()))

	if allTimeouts {
		logger.Warn("every issue is a scanner timeout; treating the run as failed")
	}
	if allMemoryErrors {
		logger.Warn("every issue is a scanner memory error; treating the run as failed")
	}

	out, closeOut, err := openOutput()
	if err != nil {
		return err
	}

	if err := writeSummary(out, cfg, s); err != nil {
		_ = closeOut()
		return err
	}

	// A failed close means the report may be truncated on disk.
	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to finalize output file: %w", err)
	}

	exitCode = exitcode.FromVerdicts(allTimeouts, allMemoryErrors)
	return nil
}

// loadConfig loads the configuration file, honoring the --config flag.
func loadConfig() (*config.Config, error) {
	loader := config.NewLoader()
	if cfgFile != "" {
		return loader.LoadFromFile(cfgFile)
	}
	return loader.Load()
}

// openOutput opens the --output file or falls back to stdout. The
// returned close function must be checked; its error is the only signal
// that the report was not fully flushed.
func openOutput() (io.Writer, func() error, error) {
	if outputFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	cleanPath, err := pathutil.ValidatePath(outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid output path: %w", err)
	}

	f, err := os.Create(cleanPath) // #nosec G304 - path is validated above
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, f.Close, nil
}

func writeSummary(out io.Writer, cfg *config.Config, s *summary.Summary) error {
	switch cfg.Output.Format {
	case config.FormatSARIF:
		return writers.NewSARIFWriter(writers.WithSARIFOutput(out)).Write(s)
	case config.FormatConsole:
		return writers.NewConsoleWriter(
			writers.WithConsoleOutput(out),
			writers.WithConsoleColor(!noColor && !cfg.Output.NoColor),
			writers.WithConsoleVerbose(cfg.Output.Verbose),
		).Write(s)
	default:
		return writers.NewJSONWriter(
			writers.WithJSONOutput(out),
			writers.WithJSONToolInfo("scanlens", version),
		).Write(s)
	}
}
