package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/bemgen"
)

// errLintFailed signals a failing lint run whose issues were already printed.
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint class attributes in templates against the schema",
	Long: `Check literal class strings in templ, HTML and Go files against the schema.
Undeclared elements and modifiers of declared blocks are errors; BEM classes of
undeclared blocks and modifiers used without their base class are warnings.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", defaultLintPaths, "File patterns to scan for class attributes")
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (bemlint) suffix on issues")
}

func runLint() error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	lintConfig := buildLintConfig()
	result, err := bemgen.Lint(schema, lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	if getBoolWithFallback("verbose", "verbose", false) && result.FilesSkipped > 0 {
		fmt.Fprintf(os.Stderr, "Scanned %d files (skipped %d generated/ignored files)\n",
			result.FilesScanned, result.FilesSkipped)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		format := bemgen.DetermineOutputFormat(getStringWithFallback("output-format", "lint.output-format", ""))
		if err := bemgen.WriteOutput(os.Stdout, result, format, lintConfig); err != nil {
			return err
		}

		if format == bemgen.OutputIssues && getBoolWithFallback("verbose", "verbose", false) {
			verbose := bemgen.NewVerboseReporter(os.Stdout, useColors())
			verbose.PrintStatistics(*result)
			verbose.PrintCoverage(*result)
			verbose.PrintUnused(*result)
		}
	}

	// Soft gate: only errors fail the build unless strict
	if result.Failed(lintConfig.Strict) {
		return errLintFailed
	}
	return nil
}
