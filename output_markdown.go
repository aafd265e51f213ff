package bemgen

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the lint result as a Markdown report
func WriteMarkdown(w io.Writer, result *LintResult) error {
	var sb strings.Builder

	var errors, warnings []Issue
	for _, issue := range result.Issues {
		if issue.Severity == SeverityError {
			errors = append(errors, issue)
		} else {
			warnings = append(warnings, issue)
		}
	}

	sb.WriteString("# BEM Linter Report\n\n")

	sb.WriteString("## Executive Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	fmt.Fprintf(&sb, "| **Status** | %s |\n", markdownStatus(result))
	fmt.Fprintf(&sb, "| **Total Issues** | %d (%d errors, %d warnings) |\n", len(result.Issues), len(errors), len(warnings))
	fmt.Fprintf(&sb, "| **Files Scanned** | %d |\n", result.FilesScanned)
	fmt.Fprintf(&sb, "| **Schema Coverage** | %.1f%% |\n", result.UsagePercentage)
	fmt.Fprintf(&sb, "| **Classes Used** | %d / %d |\n", result.DeclaredClasses-len(result.Unused), result.DeclaredClasses)
	sb.WriteString("\n")

	if len(errors) > 0 {
		sb.WriteString("## ❌ Errors\n\n")
		writeMarkdownIssues(&sb, errors)
	}
	if len(warnings) > 0 {
		sb.WriteString("## ⚠️ Warnings\n\n")
		writeMarkdownIssues(&sb, warnings)
	}

	sb.WriteString("## 📊 Detailed Statistics\n\n")
	fmt.Fprintf(&sb, "- Class attributes found: %d\n", result.References)
	fmt.Fprintf(&sb, "- Classes checked: %d\n", result.ClassesChecked)
	fmt.Fprintf(&sb, "- Files skipped: %d\n", result.FilesSkipped)
	if result.TruncatedCount > 0 {
		fmt.Fprintf(&sb, "- Issues truncated: %d\n", result.TruncatedCount)
	}
	sb.WriteString("\n")

	if len(result.Unused) > 0 {
		sb.WriteString("### Unused Classes\n\n")
		for i, class := range result.Unused {
			if i >= maxUnusedListed {
				fmt.Fprintf(&sb, "- ... and %d more\n", len(result.Unused)-maxUnusedListed)
				break
			}
			fmt.Fprintf(&sb, "- `%s`\n", class)
		}
		sb.WriteString("\n")
	}

	if recs := recommendations(result, len(errors), len(warnings)); len(recs) > 0 {
		sb.WriteString("## ✅ Recommendations\n\n")
		for i, rec := range recs {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, rec)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("---\n\n*Generated by bemgen linter*\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// markdownStatus grades a run: any error needs attention, otherwise coverage decides.
func markdownStatus(result *LintResult) string {
	switch {
	case result.ErrorCount > 0:
		return "🔴 Needs Attention"
	case result.UsagePercentage >= 80:
		return "🟢 Excellent"
	case result.UsagePercentage >= 50:
		return "🟡 Good Progress"
	default:
		return "🔴 Needs Attention"
	}
}

func writeMarkdownIssues(sb *strings.Builder, issues []Issue) {
	sb.WriteString("| Location | Class | Message |\n")
	sb.WriteString("|----------|-------|---------|\n")
	for _, issue := range issues {
		fmt.Fprintf(sb, "| `%s:%d:%d` | `%s` | %s |\n",
			issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column,
			escapeMarkdownCell(issue.Class), escapeMarkdownCell(issue.Text))
	}
	sb.WriteString("\n")
}

func recommendations(result *LintResult, errors, warnings int) []string {
	var recs []string
	if errors > 0 {
		recs = append(recs, fmt.Sprintf("Fix %s referencing elements or modifiers the schema does not declare",
			pluralizeCount(errors, "class", "classes")))
	}
	if warnings > 0 {
		recs = append(recs, fmt.Sprintf("Review %s: undeclared blocks, missing base classes and repeated tokens",
			pluralizeCount(warnings, "warning", "warnings")))
	}
	if len(result.Unused) > 0 {
		recs = append(recs, fmt.Sprintf("Remove %s from the schema or use them in markup",
			pluralizeCount(len(result.Unused), "unused class", "unused classes")))
	}
	return recs
}

// escapeMarkdownCell keeps table cells on one row
func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
