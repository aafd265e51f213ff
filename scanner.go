package bemgen

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassReference is a literal class string found in a source file
type ClassReference struct {
	Value    string       // Full attribute value: "alert alert--success"
	Location FileLocation // Where it was found
}

// FileLocation tracks where a class reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column where the class value starts
	Text   string // Line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

var (
	// Patterns for literal class strings, most specific first
	patterns = []*regexp.Regexp{
		regexp.MustCompile(`class="([^"]+)"`),
		regexp.MustCompile(`class='([^']+)'`),
		regexp.MustCompile(`class=\{\s*"([^"]+)"`),
	}

	templClassesMulti = regexp.MustCompile(`templ\.Classes\(([^)]+)\)`)
	templKVMulti      = regexp.MustCompile(`templ\.KV\(([^)]+)\)`)

	commentPattern = regexp.MustCompile(`^\s*//`)

	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated checks if a file is a templ-generated Go file
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads the .gitignore file of the working directory once.
// A missing .gitignore disables ignore filtering.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a file is excluded from scanning:
// templ-generated Go files, and relative paths matched by .gitignore.
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project's ignore rules
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for literal class strings
func ScanFiles(scanPatterns []string) ([]ClassReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			stats.FilesSkipped++
			stats.FilesScanned--
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands doublestar globs to regular files and tracks statistics
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}

			stats.FilesDiscovered++
			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for class references
func scanFile(filePath string) ([]ClassReference, error) {
	// #nosec G304 - path comes from trusted configuration
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// tokenIndex finds token in s at a whitespace or quote boundary, so "alert"
// does not match inside "alert--info".
func tokenIndex(s, token string) int {
	isBoundary := func(b byte) bool {
		return b == ' ' || b == '\t' || b == '"' || b == '\'' || b == '{' || b == '}'
	}

	offset := 0
	for {
		idx := strings.Index(s[offset:], token)
		if idx == -1 {
			return -1
		}
		start := offset + idx
		end := start + len(token)
		if (start == 0 || isBoundary(s[start-1])) && (end == len(s) || isBoundary(s[end])) {
			return start
		}
		offset = start + 1
	}
}

// extractClassesFromLine extracts all literal class strings from a line
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	hasTemplClasses := strings.Contains(line, "templ.Classes(")
	hasTemplKV := strings.Contains(line, "templ.KV(")

	if hasTemplClasses || hasTemplKV {
		var refs []ClassReference
		if hasTemplClasses {
			refs = append(refs, extractFromTemplCall(templClassesMulti, line, lineNum, file, false)...)
		}
		if hasTemplKV {
			refs = append(refs, extractFromTemplCall(templKVMulti, line, lineNum, file, true)...)
		}
		return refs
	}

	var refs []ClassReference
	for _, pattern := range patterns {
		for _, match := range pattern.FindAllStringSubmatchIndex(line, -1) {
			if len(match) < 4 {
				continue
			}
			refs = append(refs, ClassReference{
				Value: line[match[2]:match[3]],
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: match[2] + 1,
					Text:   line,
				},
			})
		}
	}

	return refs
}

// extractFromTemplCall extracts string literals from templ.Classes(...) and
// templ.KV(...) calls. For KV only the first argument is a class.
func extractFromTemplCall(re *regexp.Regexp, line string, lineNum int, file string, firstOnly bool) []ClassReference {
	var refs []ClassReference

	for _, match := range re.FindAllStringSubmatchIndex(line, -1) {
		if len(match) < 4 {
			continue
		}

		args := splitTemplArgs(line[match[2]:match[3]])
		if firstOnly && len(args) > 1 {
			args = args[:1]
		}

		for _, arg := range args {
			arg = strings.TrimSpace(arg)
			if len(arg) < 2 || !strings.HasPrefix(arg, `"`) || !strings.HasSuffix(arg, `"`) {
				continue
			}
			value := strings.Trim(arg, `"`)
			refs = append(refs, ClassReference{
				Value: value,
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: strings.Index(line, arg) + 2,
					Text:   line,
				},
			})
		}
	}

	return refs
}

// splitTemplArgs splits comma-separated arguments outside parentheses
func splitTemplArgs(s string) []string {
	var parts []string
	var current strings.Builder
	parenDepth := 0

	for _, r := range s {
		switch r {
		case '(':
			parenDepth++
			current.WriteRune(r)
		case ')':
			parenDepth--
			current.WriteRune(r)
		case ',':
			if parenDepth == 0 {
				parts = append(parts, current.String())
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// GetRelativePath returns a path relative to the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
