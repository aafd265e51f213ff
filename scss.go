package bemgen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yacobolo/bemgen/internal/bemname"
)

// EmptyLayerWarning is reported when an empty layer name is requested.
const EmptyLayerWarning = "Warning: Empty layer name provided. No CSS layer will be generated."

const indentUnit = "  "

// SCSSOptions configures stylesheet skeleton generation.
type SCSSOptions struct {
	// Layer wraps the output in "@layer <name> { ... }" when non-nil and
	// non-empty. The name is used verbatim. An empty name produces a warning
	// and no wrapper.
	Layer *string

	// Warnings receives diagnostic lines. Defaults to os.Stderr.
	Warnings io.Writer
}

// Layer returns a pointer to name, for use in SCSSOptions.
func Layer(name string) *string {
	return &name
}

// SCSSResult describes a written stylesheet skeleton.
type SCSSResult struct {
	Path     string
	Blocks   int
	Rules    int // rule blocks emitted, excluding the layer wrapper
	Warnings []string
}

// RenderSCSS renders the nested SCSS skeleton for schema.
// It returns the text and any warnings produced while rendering.
func RenderSCSS(schema *Schema, opts SCSSOptions) (string, []string) {
	text, _, warnings := renderSCSS(schema, opts)
	return text, warnings
}

// WriteSCSS renders the skeleton and writes it to outputPath + ".scss",
// replacing any existing file.
func WriteSCSS(schema *Schema, outputPath string, opts SCSSOptions) (*SCSSResult, error) {
	text, rules, warnings := renderSCSS(schema, opts)

	w := opts.Warnings
	if w == nil {
		w = os.Stderr
	}
	for _, warning := range warnings {
		fmt.Fprintln(w, warning)
	}

	path := outputPath + ".scss"
	// #nosec G306 - generated stylesheets are meant to be world-readable
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	result := &SCSSResult{
		Path:     path,
		Rules:    rules,
		Warnings: warnings,
	}
	if schema != nil {
		result.Blocks = len(schema.Blocks)
	}
	return result, nil
}

type scssWriter struct {
	lines []string
	rules int
}

func (w *scssWriter) line(depth int, text string) {
	w.lines = append(w.lines, strings.Repeat(indentUnit, depth)+text)
}

func (w *scssWriter) open(depth int, selector string) {
	w.line(depth, selector+" {")
	w.rules++
}

func (w *scssWriter) close(depth int) {
	w.line(depth, "}")
}

func (w *scssWriter) comment(depth int, class string) {
	w.line(depth, "// Styles for "+class)
}

func renderSCSS(schema *Schema, opts SCSSOptions) (string, int, []string) {
	var warnings []string
	w := &scssWriter{}
	depth := 0

	useLayer := opts.Layer != nil && *opts.Layer != ""
	if opts.Layer != nil && *opts.Layer == "" {
		warnings = append(warnings, EmptyLayerWarning)
	}

	if useLayer {
		w.line(0, "@layer "+*opts.Layer+" {")
		depth = 1
	}

	if schema != nil {
		for _, block := range schema.Blocks {
			writeBlock(w, depth, block)
		}
	}

	if useLayer {
		w.close(0)
	}

	return strings.Join(w.lines, "\n"), w.rules, warnings
}

func writeBlock(w *scssWriter, depth int, block Block) {
	w.open(depth, "."+block.Name)

	for _, m := range block.Modifiers {
		w.open(depth+1, "&"+bemname.ModifierSep+m)
		w.comment(depth+2, bemname.Modifier(block.Name, m))
		w.close(depth + 1)
	}

	for _, el := range block.Elements {
		base := bemname.Element(block.Name, el.Name)
		w.open(depth+1, "&"+bemname.ElementSep+el.Name)

		if len(el.Modifiers) == 0 {
			w.comment(depth+2, base)
		}
		for _, m := range el.Modifiers {
			w.open(depth+2, "&"+bemname.ModifierSep+m)
			w.comment(depth+3, bemname.Modifier(base, m))
			w.close(depth + 2)
		}

		w.close(depth + 1)
	}

	w.close(depth)
}
