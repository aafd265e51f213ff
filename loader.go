package bemgen

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ErrNoSchemaFiles is returned by LoadSchemas when no file matches.
var ErrNoSchemaFiles = errors.New("no schema files found")

// Schema files map block names to their definition. JSON files use the same
// shape. Declaration order is kept.
//
//	alert:
//	  modifiers: [success, error]
//	  elements:
//	    icon:
//	      modifiers: [large]
//	    content: ~

// ParseSchema decodes a YAML or JSON schema document. name is used in error
// messages only.
func ParseSchema(data []byte, name string) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	d := schemaDecoder{name: name}
	schema := &Schema{}

	if len(doc.Content) > 0 {
		root := doc.Content[0]
		switch root.Kind {
		case yaml.MappingNode:
			for i := 0; i+1 < len(root.Content); i += 2 {
				schema.Blocks = append(schema.Blocks, d.block(root.Content[i], root.Content[i+1]))
			}
		case yaml.ScalarNode:
			if root.Tag != "!!null" {
				d.fail(root, "schema must be a mapping of block names")
			}
		default:
			d.fail(root, "schema must be a mapping of block names")
		}
	}

	if len(d.problems) > 0 {
		return nil, &DefinitionError{Problems: d.problems}
	}
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return schema, nil
}

// LoadSchemaFile reads and parses a single schema file.
func LoadSchemaFile(path string) (*Schema, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return ParseSchema(data, path)
}

// LoadSchemas expands doublestar glob patterns and merges every matching
// schema file, in match order, into one schema. It returns the files read.
// A block declared in more than one file is an invalid definition.
func LoadSchemas(patterns []string) (*Schema, []string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}

	if len(files) == 0 {
		return nil, nil, fmt.Errorf("%w matching %v", ErrNoSchemaFiles, patterns)
	}

	merged := &Schema{}
	for _, file := range files {
		schema, err := LoadSchemaFile(file)
		if err != nil {
			return nil, nil, err
		}
		merged.Blocks = append(merged.Blocks, schema.Blocks...)
	}

	if err := merged.Validate(); err != nil {
		return nil, nil, err
	}
	return merged, files, nil
}

type schemaDecoder struct {
	name     string
	problems []string
}

func (d *schemaDecoder) fail(n *yaml.Node, format string, args ...any) {
	d.problems = append(d.problems, fmt.Sprintf("%s:%d:%d: %s", d.name, n.Line, n.Column, fmt.Sprintf(format, args...)))
}

func (d *schemaDecoder) block(key, value *yaml.Node) Block {
	b := Block{Name: key.Value}

	for _, f := range d.fields(value, "block "+key.Value) {
		switch f.key.Value {
		case "modifiers":
			b.Modifiers = d.modifiers(f.value)
		case "elements":
			b.Elements = d.elements(f.value, key.Value)
		default:
			d.fail(f.key, "unknown field %q in block %q", f.key.Value, key.Value)
		}
	}
	return b
}

func (d *schemaDecoder) elements(n *yaml.Node, block string) []Element {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		d.fail(n, "elements of block %q must be a mapping", block)
		return nil
	}

	var out []Element
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		el := Element{Name: key.Value}
		for _, f := range d.fields(value, fmt.Sprintf("element %q of block %q", key.Value, block)) {
			if f.key.Value != "modifiers" {
				d.fail(f.key, "unknown field %q in element %q of block %q", f.key.Value, key.Value, block)
				continue
			}
			el.Modifiers = d.modifiers(f.value)
		}
		out = append(out, el)
	}
	return out
}

func (d *schemaDecoder) modifiers(n *yaml.Node) []string {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.SequenceNode {
		d.fail(n, "modifiers must be a list")
		return nil
	}

	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		if item.Kind != yaml.ScalarNode {
			d.fail(item, "modifier names must be plain strings")
			continue
		}
		out = append(out, item.Value)
	}
	return out
}

type field struct {
	key, value *yaml.Node
}

func (d *schemaDecoder) fields(n *yaml.Node, owner string) []field {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		d.fail(n, "%s must be a mapping", owner)
		return nil
	}

	out := make([]field, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out = append(out, field{key: n.Content[i], value: n.Content[i+1]})
	}
	return out
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}
