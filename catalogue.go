package bemgen

import (
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/yacobolo/bemgen/internal/bemname"
)

// ClassInfo describes one composable class of a schema.
type ClassInfo struct {
	Class    string `json:"class"`
	Block    string `json:"block"`
	Element  string `json:"element,omitempty"`
	Modifier string `json:"modifier,omitempty"`
}

// Catalogue lists every class a schema can produce, in schema order:
// block, block modifiers, then each element followed by its modifiers.
func Catalogue(schema *Schema) []ClassInfo {
	if schema == nil {
		return nil
	}

	var out []ClassInfo
	for _, b := range schema.Blocks {
		out = append(out, ClassInfo{Class: b.Name, Block: b.Name})
		for _, m := range b.Modifiers {
			out = append(out, ClassInfo{Class: bemname.Modifier(b.Name, m), Block: b.Name, Modifier: m})
		}
		for _, el := range b.Elements {
			base := bemname.Element(b.Name, el.Name)
			out = append(out, ClassInfo{Class: base, Block: b.Name, Element: el.Name})
			for _, m := range el.Modifiers {
				out = append(out, ClassInfo{Class: bemname.Modifier(base, m), Block: b.Name, Element: el.Name, Modifier: m})
			}
		}
	}
	return out
}

// ClassNames returns the class strings of Catalogue(schema).
func ClassNames(schema *Schema) []string {
	infos := Catalogue(schema)
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Class
	}
	return names
}

// CatalogueFormat selects how a catalogue is written.
type CatalogueFormat string

// Catalogue output formats.
const (
	CatalogueText CatalogueFormat = "text"
	CatalogueJSON CatalogueFormat = "json"
)

// WriteCatalogue writes the catalogue of schema to w, one class per line for
// text output or as an indented JSON array.
func WriteCatalogue(w io.Writer, schema *Schema, format CatalogueFormat) error {
	infos := Catalogue(schema)

	if format == CatalogueJSON {
		if infos == nil {
			infos = []ClassInfo{}
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	}

	var sb strings.Builder
	for _, info := range infos {
		sb.WriteString(info.Class)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
