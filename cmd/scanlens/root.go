package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/osscompliance/scanlens/pkg/exitcode"
)

// Version information set at build time
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// Global flags
var (
	cfgFile    string
	outputFile string
	formatFlag string
	noColor    bool
	verbose    bool
)

// exitCode is set by commands that finish without an error but still
// need to signal a failed scan run.
var exitCode = exitcode.Success

// rootCmd is the base command for scanlens
var rootCmd = &cobra.Command{
	Use:   "scanlens",
	Short: "scanlens - normalize ScanCode results into canonical findings",
	Long: `scanlens converts the raw JSON output of the ScanCode license and
copyright scanner into a canonical, tool-agnostic summary: license
findings with SPDX-style expressions, copyright findings, and a
deduplicated issue log with known failure signatures classified.

Examples:
  scanlens summarize result.json             # JSON report to stdout
  scanlens summarize --format sarif result.json
  scanlens summarize --format console --verbose result.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scanlens %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildDate)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: .scanlens.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "output format (json, sarif, console)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "per-finding console output")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitcode.Error
	}
	return exitCode
}
