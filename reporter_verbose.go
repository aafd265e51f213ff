package bemgen

import (
	"fmt"
	"io"
)

// maxUnusedListed caps the unused class listing.
const maxUnusedListed = 10

// VerboseReporter prints schema coverage statistics after a lint run
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "BEM Linter Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------------")

	fmt.Fprintf(r.w, "Schema Classes:   %d\n", result.DeclaredClasses)
	fmt.Fprintf(r.w, "Used in Markup:   %d (%.1f%%)\n", result.DeclaredClasses-len(result.Unused), result.UsagePercentage)
	fmt.Fprintf(r.w, "Never Used:       %d\n", len(result.Unused))
	fmt.Fprintf(r.w, "Files Scanned:    %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Class Attributes: %d\n", result.References)
	fmt.Fprintf(r.w, "Classes Checked:  %d\n", result.ClassesChecked)
}

// PrintCoverage shows a progress bar of schema classes used in markup
func (r *VerboseReporter) PrintCoverage(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Schema Coverage", r.useColors))
	fmt.Fprintln(r.w, "---------------")
	printProgressBar(r.w, result.UsagePercentage)
}

// PrintUnused lists declared classes that no scanned file references
func (r *VerboseReporter) PrintUnused(result LintResult) {
	if len(result.Unused) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Unused Classes", r.useColors))
	fmt.Fprintln(r.w, "--------------")

	for i, class := range result.Unused {
		if i >= maxUnusedListed {
			fmt.Fprintf(r.w, "... and %d more\n", len(result.Unused)-maxUnusedListed)
			break
		}
		fmt.Fprintf(r.w, "• %s\n", class)
	}
}

// printProgressBar renders a 20-cell bar followed by the percentage
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
