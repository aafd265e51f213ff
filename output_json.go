package bemgen

import (
	"io"
	"time"

	json "github.com/goccy/go-json"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues    int `json:"total_issues"`
	Errors         int `json:"errors"`
	Warnings       int `json:"warnings"`
	Truncated      int `json:"truncated"`
	FilesScanned   int `json:"files_scanned"`
	ClassesChecked int `json:"classes_checked"`

	SchemaClasses   int      `json:"schema_classes"`
	UsagePercentage float64  `json:"usage_percentage"`
	UnusedClasses   []string `json:"unused_classes"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Class    string `json:"class"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// jsonSchemaVersion is bumped on incompatible changes to JSONOutput.
const jsonSchemaVersion = "1"

// WriteJSON writes the lint result as indented JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result, time.Now()))
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	var errors, warnings int
	issues := make([]JSONIssue, 0, len(result.Issues))

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}

		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Class:    issue.Class,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		issues = append(issues, ji)
	}

	unused := result.Unused
	if unused == nil {
		unused = []string{}
	}

	return JSONOutput{
		Version:   jsonSchemaVersion,
		Timestamp: now.UTC().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:    len(result.Issues),
			Errors:         errors,
			Warnings:       warnings,
			Truncated:      result.TruncatedCount,
			FilesScanned:   result.FilesScanned,
			ClassesChecked: result.ClassesChecked,

			SchemaClasses:   result.DeclaredClasses,
			UsagePercentage: result.UsagePercentage,
			UnusedClasses:   unused,
		},
		Issues: issues,
	}
}
