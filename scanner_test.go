package bemgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTemplGenerated(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "standard templ generated (_templ.go)",
			path:     "internal/web/features/sidebar_templ.go",
			expected: true,
		},
		{
			name:     "alternate templ generated (.templ.go)",
			path:     "internal/web/features/sidebar.templ.go",
			expected: true,
		},
		{
			name:     "regular go file",
			path:     "internal/api/handlers.go",
			expected: false,
		},
		{
			name:     "templ source file",
			path:     "internal/web/features/sidebar.templ",
			expected: false,
		},
		{
			name:     "file with templ in name but not generated",
			path:     "internal/templates/handler.go",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isTemplGenerated(tt.path)
			require.Equal(t, tt.expected, got, "isTemplGenerated(%q)", tt.path)
		})
	}
}

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "skip templ generated",
			path:     "internal/web/sidebar_templ.go",
			expected: true,
		},
		{
			name:     "scan templ source",
			path:     "internal/web/sidebar.templ",
			expected: false,
		},
		{
			name:     "scan absolute html",
			path:     "/tmp/views/index.html",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldSkipFile(tt.path)
			require.Equal(t, tt.expected, got, "shouldSkipFile(%q)", tt.path)
		})
	}
}

func TestTokenIndex(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		token string
		want  int
	}{
		{name: "first token", s: "alert alert--info", token: "alert", want: 0},
		{name: "second token", s: "alert alert--info", token: "alert--info", want: 6},
		{name: "prefix is not a match", s: "alert--info alert", token: "alert", want: 12},
		{name: "quoted", s: `"btn"`, token: "btn", want: 1},
		{name: "missing", s: "alert--info", token: "alert", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenIndex(tt.s, tt.token))
		})
	}
}

func TestExtractClassesFromLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		values  []string
		columns []int
	}{
		{
			name:    "class attribute with single class",
			line:    `<div class="alert">`,
			values:  []string{"alert"},
			columns: []int{13},
		},
		{
			name:    "class attribute with multiple classes",
			line:    `<button class="btn btn--primary btn--lg">`,
			values:  []string{"btn btn--primary btn--lg"},
			columns: []int{16},
		},
		{
			name:    "single quotes",
			line:    `<div class='icon nav__icon'>`,
			values:  []string{"icon nav__icon"},
			columns: []int{13},
		},
		{
			name:    "string literal in braces",
			line:    `<div class={ "nav-group" }>`,
			values:  []string{"nav-group"},
			columns: []int{15},
		},
		{
			name:    "templ.KV takes the class argument only",
			line:    `<div class={ templ.KV("nav-group--iconic", true) }>`,
			values:  []string{"nav-group--iconic"},
			columns: []int{24},
		},
		{
			name:    "templ.Classes skips non-literal arguments",
			line:    `<div class={ templ.Classes("btn", ui.BtnPrimary, "btn--sm") }>`,
			values:  []string{"btn", "btn--sm"},
			columns: []int{29, 51},
		},
		{
			name:    "two attributes on one line",
			line:    `<a class="nav__link"><i class="icon"></i></a>`,
			values:  []string{"nav__link", "icon"},
			columns: []int{11, 32},
		},
		{
			name: "comment line",
			line: `// class="old-style"`,
		},
		{
			name: "constant only",
			line: `<div class={ ui.AppSidebar }>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractClassesFromLine(tt.line, 7, "view.templ")
			require.Len(t, refs, len(tt.values), "wrong number of results")

			for i, ref := range refs {
				assert.Equal(t, tt.values[i], ref.Value, "value mismatch at index %d", i)
				assert.Equal(t, tt.columns[i], ref.Location.Column, "column mismatch at index %d", i)
				assert.Equal(t, 7, ref.Location.Line)
				assert.Equal(t, "view.templ", ref.Location.File)
				assert.Equal(t, tt.line, ref.Location.Text)
			}
		})
	}
}

func TestSplitTemplArgs(t *testing.T) {
	got := splitTemplArgs(`"btn", templ.KV("btn--sm", small), ui.Card`)
	assert.Equal(t, []string{`"btn"`, ` templ.KV("btn--sm", small)`, ` ui.Card`}, got)
	assert.Nil(t, splitTemplArgs(""))
}

func TestScanFile(t *testing.T) {
	content := `package views

// This is a comment with class="ignored"
templ Alert() {
	<div class="alert alert--success">
		<span class={ templ.KV("alert__icon--large", large) }>!</span>
		<p class={ ui.AlertContent }>Body</p>
	</div>
}
`
	path := filepath.Join(t.TempDir(), "alert.templ")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	refs, err := scanFile(path)
	require.NoError(t, err)
	require.Len(t, refs, 2)

	assert.Equal(t, "alert alert--success", refs[0].Value)
	assert.Equal(t, 5, refs[0].Location.Line)
	assert.Equal(t, "alert__icon--large", refs[1].Value)
	assert.Equal(t, 6, refs[1].Location.Line)

	_, err = scanFile(filepath.Join(t.TempDir(), "missing.templ"))
	require.Error(t, err)
}

func TestExpandGlobPatterns(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{
		"file1.templ",
		"file2.go",
		"file2_templ.go",
		"subdir/file3.templ",
		"subdir/file4.go",
	}
	for _, f := range files {
		path := filepath.Join(tmpDir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("test"), 0644))
	}

	matches, stats, err := expandGlobPatterns([]string{
		filepath.Join(tmpDir, "**/*.templ"),
		filepath.Join(tmpDir, "*.go"),
		filepath.Join(tmpDir, "**/*.templ"), // repeated pattern
	})
	require.NoError(t, err)

	assert.Len(t, matches, 3)
	assert.Equal(t, 4, stats.FilesDiscovered)
	assert.Equal(t, 3, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)
	for _, match := range matches {
		assert.False(t, strings.HasSuffix(match, "_templ.go"), "generated file in results: %s", match)
	}
}

func TestScanFiles(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.html"), []byte(`<div class="card">`+"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "b.html"), []byte(`<div class="card__body">`+"\n"), 0644))

	refs, stats, err := ScanFiles([]string{filepath.Join(tmpDir, "*.html")})
	require.NoError(t, err)
	assert.Len(t, refs, 2)
	assert.Equal(t, 2, stats.FilesScanned)

	_, _, err = ScanFiles([]string{"[invalid"})
	require.Error(t, err)
}
