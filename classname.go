package bemgen

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/yacobolo/bemgen/internal/bemname"
)

// Validation selects how a generator treats names missing from its schema.
type Validation string

const (
	// ValidationLoose accepts any name and composes it as given.
	ValidationLoose Validation = "loose"
	// ValidationStrict rejects blocks, elements and modifiers the schema does not declare.
	ValidationStrict Validation = "strict"
)

// Options configures a Generator.
type Options struct {
	Validation Validation // default: ValidationLoose
}

// Flags maps modifier names to their state. Only true entries produce classes.
type Flags map[string]bool

// Generator composes BEM class strings.
//
// Each distinct block name gets a binding on first use that is reused by
// later calls. Bindings are never evicted. A Generator is safe for
// concurrent use.
type Generator struct {
	schema *Schema
	strict bool

	mu       sync.Mutex
	bindings map[string]*binding
}

// binding pre-resolves a block name against the schema.
type binding struct {
	name string
	def  *Block // nil when the schema does not declare the block
}

// NewGenerator returns a generator, optionally bound to schema.
// The schema is validated eagerly and copied, so later changes to it have
// no effect. Strict validation requires a schema.
func NewGenerator(schema *Schema, opts Options) (*Generator, error) {
	g := &Generator{bindings: make(map[string]*binding)}

	switch opts.Validation {
	case "", ValidationLoose:
	case ValidationStrict:
		if schema == nil {
			return nil, &DefinitionError{Problems: []string{"strict validation requires a schema"}}
		}
		g.strict = true
	default:
		return nil, &DefinitionError{Problems: []string{fmt.Sprintf("unknown validation mode %q", opts.Validation)}}
	}

	if err := schema.Validate(); err != nil {
		return nil, err
	}
	g.schema = schema.clone()

	return g, nil
}

// Strict reports whether the generator rejects undeclared names.
func (g *Generator) Strict() bool {
	return g.strict
}

// Block returns the class string for a block and its modifiers,
// e.g. "alert alert--success".
func (g *Generator) Block(block string, mods Flags) (string, error) {
	return g.binding(block).compose(g.strict, "", mods)
}

// Element returns the class string for an element of a block and the
// element's modifiers, e.g. "alert__icon alert__icon--large".
func (g *Generator) Element(block, element string, mods Flags) (string, error) {
	if element == "" {
		return "", &DefinitionError{Problems: []string{fmt.Sprintf("element names of block %q must not be empty", block)}}
	}
	return g.binding(block).compose(g.strict, element, mods)
}

// ForBlock returns a generator bound to one block.
func (g *Generator) ForBlock(block string) *BlockGenerator {
	return &BlockGenerator{g: g, b: g.binding(block)}
}

// binding returns the cached binding for block, creating it on first use.
func (g *Generator) binding(block string) *binding {
	g.mu.Lock()
	defer g.mu.Unlock()

	if b, ok := g.bindings[block]; ok {
		return b
	}

	b := &binding{name: block}
	if def, ok := g.schema.Lookup(block); ok {
		b.def = def
	}
	g.bindings[block] = b
	return b
}

func (b *binding) compose(strict bool, element string, mods Flags) (string, error) {
	if b.name == "" {
		return "", &DefinitionError{Problems: []string{"block name must not be empty"}}
	}
	if strict && b.def == nil {
		return "", &LookupError{Kind: ErrUnknownBlock, Block: b.name}
	}

	base := b.name
	var declared []string
	known := b.def != nil

	if b.def != nil {
		declared = b.def.Modifiers
	}

	if element != "" {
		base = bemname.Element(b.name, element)
		declared, known = nil, false
		if b.def != nil {
			if el, ok := b.def.Element(element); ok {
				declared, known = el.Modifiers, true
			}
		}
		if strict && !known {
			return "", &LookupError{Kind: ErrUnknownElement, Block: b.name, Element: element}
		}
	}

	active, undeclared, err := orderModifiers(declared, mods)
	if err != nil {
		return "", fmt.Errorf("%s: %w", base, err)
	}
	if strict && len(undeclared) > 0 {
		return "", &LookupError{Kind: ErrUnknownModifier, Block: b.name, Element: element, Modifier: undeclared[0]}
	}

	var sb strings.Builder
	sb.WriteString(base)
	for _, m := range active {
		sb.WriteByte(' ')
		sb.WriteString(bemname.Modifier(base, m))
	}
	return sb.String(), nil
}

// orderModifiers returns the true modifiers in declaration order followed by
// undeclared true modifiers in lexical order, plus every undeclared key
// regardless of its value, sorted.
func orderModifiers(declared []string, mods Flags) (active, undeclared []string, err error) {
	if len(mods) == 0 {
		return nil, nil, nil
	}

	isDeclared := make(map[string]bool, len(declared))
	for _, m := range declared {
		isDeclared[m] = true
		if mods[m] {
			active = append(active, m)
		}
	}

	for m := range mods {
		if m == "" {
			return nil, nil, &DefinitionError{Problems: []string{"modifier names must not be empty"}}
		}
		if !isDeclared[m] {
			undeclared = append(undeclared, m)
		}
	}
	sort.Strings(undeclared)

	for _, m := range undeclared {
		if mods[m] {
			active = append(active, m)
		}
	}

	return active, undeclared, nil
}

// BlockGenerator composes classes for a single block.
type BlockGenerator struct {
	g *Generator
	b *binding
}

// Name returns the bound block name.
func (bg *BlockGenerator) Name() string {
	return bg.b.name
}

// Block returns the class string for the bound block with mods applied.
func (bg *BlockGenerator) Block(mods Flags) (string, error) {
	return bg.b.compose(bg.g.strict, "", mods)
}

// Element returns the class string for an element of the bound block.
func (bg *BlockGenerator) Element(element string, mods Flags) (string, error) {
	if element == "" {
		return "", &DefinitionError{Problems: []string{fmt.Sprintf("element names of block %q must not be empty", bg.b.name)}}
	}
	return bg.b.compose(bg.g.strict, element, mods)
}

// ForElement returns a generator bound to one element of the block.
func (bg *BlockGenerator) ForElement(element string) *ElementGenerator {
	return &ElementGenerator{bg: bg, element: element}
}

// ElementGenerator composes classes for a single element of a block.
type ElementGenerator struct {
	bg      *BlockGenerator
	element string
}

// Class returns the class string for the bound element with mods applied.
func (eg *ElementGenerator) Class(mods Flags) (string, error) {
	return eg.bg.Element(eg.element, mods)
}

// NewLooseGenerator builds a block generator from explicit modifier lists
// instead of a schema. The lists are validated immediately; an empty block,
// element or modifier name fails with ErrInvalidDefinition.
func NewLooseGenerator(block string, blockModifiers []string, elementModifiers map[string][]string, opts Options) (*BlockGenerator, error) {
	g, err := NewGenerator(schemaFromLists(block, blockModifiers, elementModifiers), opts)
	if err != nil {
		return nil, err
	}
	return g.ForBlock(block), nil
}

func (s *Schema) clone() *Schema {
	if s == nil {
		return nil
	}
	out := &Schema{Blocks: make([]Block, len(s.Blocks))}
	for i, b := range s.Blocks {
		nb := Block{Name: b.Name, Modifiers: append([]string(nil), b.Modifiers...)}
		for _, el := range b.Elements {
			nb.Elements = append(nb.Elements, Element{Name: el.Name, Modifiers: append([]string(nil), el.Modifiers...)})
		}
		out.Blocks[i] = nb
	}
	return out
}
