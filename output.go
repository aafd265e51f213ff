package bemgen

import (
	"fmt"
	"io"
)

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows issues in golangci-lint format followed by a summary
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and schema coverage without individual issues
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues, summary, statistics and schema coverage
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data for tooling
	OutputJSON OutputFormat = "json"
	// OutputMarkdown writes a report for pull requests and CI job summaries
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat maps a format flag to an OutputFormat.
// Unknown or empty values fall back to OutputIssues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	default:
		return OutputIssues
	}
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			return fmt.Errorf("write Markdown: %w", err)
		}

	case OutputSummary:
		printCoverage(NewVerboseReporter(w, ShouldUseColors(config.UseColors)), result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		printCoverage(NewVerboseReporter(w, reporter.useColors), result)

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}

	return nil
}

func printCoverage(r *VerboseReporter, result *LintResult) {
	r.PrintStatistics(*result)
	r.PrintCoverage(*result)
	r.PrintUnused(*result)
}
