package bemgen

import (
	"fmt"
	"sort"
)

// Schema declares the blocks of a stylesheet. Order is preserved by every
// consumer: generated stylesheets, class catalogues and Go constants.
type Schema struct {
	Blocks []Block
}

// Block is a top-level BEM component.
type Block struct {
	Name      string
	Modifiers []string
	Elements  []Element
}

// Element is a part of a block. Elements do not nest.
type Element struct {
	Name      string
	Modifiers []string
}

// Lookup returns the block with the given name.
func (s *Schema) Lookup(name string) (*Block, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Blocks {
		if s.Blocks[i].Name == name {
			return &s.Blocks[i], true
		}
	}
	return nil, false
}

// Element returns the element with the given name.
func (b *Block) Element(name string) (*Element, bool) {
	for i := range b.Elements {
		if b.Elements[i].Name == name {
			return &b.Elements[i], true
		}
	}
	return nil, false
}

// Validate checks that every name is non-empty and unique within its scope.
// All problems are reported together in a *DefinitionError.
func (s *Schema) Validate() error {
	if s == nil {
		return nil
	}

	var problems []string
	seenBlocks := make(map[string]bool, len(s.Blocks))

	for _, block := range s.Blocks {
		problems = append(problems, block.problems()...)
		if block.Name == "" {
			continue
		}
		if seenBlocks[block.Name] {
			problems = append(problems, fmt.Sprintf("block %q is declared more than once", block.Name))
		}
		seenBlocks[block.Name] = true
	}

	if len(problems) > 0 {
		return &DefinitionError{Problems: problems}
	}
	return nil
}

func (b Block) problems() []string {
	var problems []string

	if b.Name == "" {
		problems = append(problems, "block name must not be empty")
	}
	problems = append(problems, modifierProblems(b.Modifiers, fmt.Sprintf("block %q", b.Name))...)

	seen := make(map[string]bool, len(b.Elements))
	for _, el := range b.Elements {
		if el.Name == "" {
			problems = append(problems, fmt.Sprintf("element names of block %q must not be empty", b.Name))
			continue
		}
		if seen[el.Name] {
			problems = append(problems, fmt.Sprintf("element %q of block %q is declared more than once", el.Name, b.Name))
		}
		seen[el.Name] = true
		problems = append(problems, modifierProblems(el.Modifiers, fmt.Sprintf("element %q of block %q", el.Name, b.Name))...)
	}

	return problems
}

func modifierProblems(modifiers []string, owner string) []string {
	var problems []string
	seen := make(map[string]bool, len(modifiers))
	for _, m := range modifiers {
		if m == "" {
			problems = append(problems, fmt.Sprintf("modifier names of %s must not be empty", owner))
			continue
		}
		if seen[m] {
			problems = append(problems, fmt.Sprintf("modifier %q of %s is declared more than once", m, owner))
		}
		seen[m] = true
	}
	return problems
}

// schemaFromLists builds a single-block schema from explicit lists.
// Elements are ordered by name since maps carry no order.
func schemaFromLists(block string, blockModifiers []string, elementModifiers map[string][]string) *Schema {
	names := make([]string, 0, len(elementModifiers))
	for name := range elementModifiers {
		names = append(names, name)
	}
	sort.Strings(names)

	b := Block{Name: block, Modifiers: blockModifiers}
	for _, name := range names {
		b.Elements = append(b.Elements, Element{Name: name, Modifiers: elementModifiers[name]})
	}
	return &Schema{Blocks: []Block{b}}
}
