package bemgen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yacobolo/bemgen/internal/bemname"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths []string // Patterns to scan (e.g., "internal/web/**/*.templ")
	Strict    bool     // Fail on warnings as well as errors

	MaxIssuesPerLinter int  // 0 = unlimited
	MaxSameIssues      int  // 0 = unlimited
	PrintIssuedLines   bool // Show source lines with issues
	PrintLinterName    bool // Show (bemlint) suffix
	UseColors          bool // Force color output
}

// LintResult contains linting results
type LintResult struct {
	Issues         []Issue
	FilesScanned   int
	FilesSkipped   int
	References     int // class attributes and templ literals found
	ClassesChecked int // BEM tokens of declared blocks checked against the schema
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits

	// Schema coverage
	DeclaredClasses int            // classes the schema can produce
	Usage           map[string]int // declared class -> occurrences in markup
	Unused          []string       // declared classes never referenced, in schema order
	UsagePercentage float64
}

// Failed reports whether the result should fail a build: any error, or any
// issue at all in strict mode.
func (r *LintResult) Failed(strict bool) bool {
	if strict {
		return len(r.Issues) > 0
	}
	return r.ErrorCount > 0
}

// Lint scans source files for literal class strings and checks their BEM
// tokens against schema.
//
// Tokens of declared blocks must name declared elements and modifiers
// (errors). BEM-shaped tokens of undeclared blocks, modifier tokens used
// without their base token, and repeated tokens are warnings. Plain tokens of
// undeclared blocks are treated as utility classes and ignored.
func Lint(schema *Schema, config LintConfig) (*LintResult, error) {
	gen, err := NewGenerator(schema, Options{Validation: ValidationStrict})
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	references, stats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	result := &LintResult{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
		References:   len(references),
		Usage:        make(map[string]int),
	}

	for _, ref := range references {
		for _, issue := range checkReference(gen, schema, ref, result) {
			result.Issues = append(result.Issues, issue)
			if issue.Severity == SeverityError {
				result.ErrorCount++
			} else {
				result.WarningCount++
			}
		}
	}

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	computeCoverage(schema, result)
	return result, nil
}

// computeCoverage fills the schema coverage fields from result.Usage.
func computeCoverage(schema *Schema, result *LintResult) {
	classes := ClassNames(schema)
	result.DeclaredClasses = len(classes)

	used := 0
	for _, class := range classes {
		if result.Usage[class] > 0 {
			used++
		} else {
			result.Unused = append(result.Unused, class)
		}
	}

	if len(classes) > 0 {
		result.UsagePercentage = float64(used) / float64(len(classes)) * 100
	}
}

// checkReference validates every token of one class attribute.
func checkReference(gen *Generator, schema *Schema, ref ClassReference, result *LintResult) []Issue {
	var issues []Issue

	var tokens []string
	present := make(map[string]bool)
	for _, token := range strings.Fields(ref.Value) {
		if present[token] {
			issues = append(issues, newIssue(ref, token, SeverityWarning, fmt.Sprintf(IssueDuplicatedClass, token)))
			continue
		}
		present[token] = true
		tokens = append(tokens, token)
	}

	for _, token := range tokens {
		tok, ok := bemname.Parse(token)
		if !ok {
			if strings.Contains(token, bemname.ElementSep) || strings.Contains(token, bemname.ModifierSep) {
				issues = append(issues, newIssue(ref, token, SeverityWarning, fmt.Sprintf(IssueMalformedClass, token)))
			}
			continue
		}

		if _, declared := schema.Lookup(tok.Block); !declared {
			if tok.IsBEM() {
				issues = append(issues, newIssue(ref, token, SeverityWarning, fmt.Sprintf(IssueUnknownBlock, tok.Block)))
			}
			continue
		}

		result.ClassesChecked++
		if err := checkToken(gen, tok); err != nil {
			issues = append(issues, newIssue(ref, token, SeverityError, err.Error()))
			continue
		}
		result.Usage[token]++

		if tok.Modifier != "" && !present[tok.Base()] {
			issues = append(issues, newIssue(ref, token, SeverityWarning, fmt.Sprintf(IssueMissingBase, token, tok.Base())))
		}
	}

	return issues
}

// checkToken resolves a token through the strict generator.
func checkToken(gen *Generator, tok bemname.Token) error {
	var mods Flags
	if tok.Modifier != "" {
		mods = Flags{tok.Modifier: true}
	}

	var err error
	if tok.Element != "" {
		_, err = gen.Element(tok.Block, tok.Element, mods)
	} else {
		_, err = gen.Block(tok.Block, mods)
	}
	return err
}

func newIssue(ref ClassReference, token, severity, text string) Issue {
	column := ref.Location.Column
	if idx := tokenIndex(ref.Value, token); idx != -1 {
		column += idx
	}

	filename := ref.Location.File
	if filepath.IsAbs(filename) {
		filename = GetRelativePath(filename)
	}

	return Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		Class:       token,
		SourceLines: []string{ref.Location.Text},
		Pos: IssuePos{
			Filename: filename,
			Line:     ref.Location.Line,
			Column:   column,
		},
	}
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
