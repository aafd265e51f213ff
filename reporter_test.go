package bemgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"alert\">",
			column:     15,
			want:       "              ^", // 14 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<button class=\"btn\">",
			column:     17,
			want:       "\t\t              ^", // 2 tabs + 14 spaces + caret
		},
		{
			name:       "start of line",
			sourceLine: "class=\"alert\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func sampleIssues() []Issue {
	return []Issue{
		{
			FromLinter:  LinterName,
			Text:        `class "alert" is repeated in the same attribute`,
			Severity:    SeverityWarning,
			Class:       "alert",
			SourceLines: []string{`<b class="alert alert">`},
			Pos:         IssuePos{Filename: "views/b.templ", Line: 3, Column: 17},
		},
		{
			FromLinter:  LinterName,
			Text:        `element "iconn" is not defined in block "alert"`,
			Severity:    SeverityError,
			Class:       "alert__iconn",
			SourceLines: []string{`<i class="alert__iconn">`},
			Pos:         IssuePos{Filename: "views/a.templ", Line: 10, Column: 11},
		},
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printLines: true, printLinterName: true}

	reporter.PrintIssues(sampleIssues())

	want := strings.Join([]string{
		`views/a.templ:10:11: element "iconn" is not defined in block "alert" (bemlint)`,
		"\t" + `<i class="alert__iconn">`,
		"\t          ^",
		`views/b.templ:3:17: class "alert" is repeated in the same attribute (bemlint)`,
		"\t" + `<b class="alert alert">`,
		"\t                ^",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintIssuesWithoutLinesOrLinter(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintIssues(sampleIssues()[:1])

	assert.Equal(t, `views/b.templ:3:17: class "alert" is repeated in the same attribute`+"\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintSummary(LintResult{
		Issues:         sampleIssues(),
		FilesScanned:   1,
		ClassesChecked: 12,
		TruncatedCount: 3,
	})

	assert.Equal(t, "\n2 issues (1 error, 1 warning, 3 issues truncated):\n* bemlint: 2\nScanned 1 file, checked 12 classes\n", buf.String())
}

func TestPrintSummaryClean(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintSummary(LintResult{FilesScanned: 4, ClassesChecked: 1})

	assert.Equal(t, "\n0 issues:\nScanned 4 files, checked 1 class\n", buf.String())
}

func TestVerboseReporter(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewVerboseReporter(&buf, false)

	unused := make([]string, 12)
	for i := range unused {
		unused[i] = "card--m" + string(rune('a'+i))
	}
	result := LintResult{
		FilesScanned:    3,
		References:      8,
		ClassesChecked:  10,
		DeclaredClasses: 16,
		Unused:          unused,
		UsagePercentage: 25,
	}

	reporter.PrintStatistics(result)
	reporter.PrintCoverage(result)
	reporter.PrintUnused(result)
	out := buf.String()

	assert.Contains(t, out, "Schema Classes:   16\n")
	assert.Contains(t, out, "Used in Markup:   4 (25.0%)\n")
	assert.Contains(t, out, "[█████░░░░░░░░░░░░░░░] 25.0%\n")
	assert.Contains(t, out, "• card--ma\n")
	assert.Contains(t, out, "• card--mj\n")
	assert.NotContains(t, out, "card--mk")
	assert.Contains(t, out, "... and 2 more\n")
}

func TestVerboseReporterNoUnused(t *testing.T) {
	var buf bytes.Buffer
	NewVerboseReporter(&buf, false).PrintUnused(LintResult{})
	assert.Empty(t, buf.String())
}
