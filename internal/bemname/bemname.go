// Package bemname composes and splits BEM class tokens.
package bemname

import (
	"fmt"
	"strings"
	"unicode"
)

// Separators used by the BEM naming convention.
const (
	ElementSep  = "__"
	ModifierSep = "--"
)

// Element returns the element token "block__element".
func Element(block, element string) string {
	return block + ElementSep + element
}

// Modifier returns the modifier token "base--modifier".
func Modifier(base, modifier string) string {
	return base + ModifierSep + modifier
}

// Token is a parsed BEM class token.
type Token struct {
	Block    string
	Element  string // empty for block tokens
	Modifier string // empty for unmodified tokens
}

// Base returns the token without its modifier.
func (t Token) Base() string {
	if t.Element == "" {
		return t.Block
	}
	return Element(t.Block, t.Element)
}

// String recomposes the class token.
func (t Token) String() string {
	if t.Modifier == "" {
		return t.Base()
	}
	return Modifier(t.Base(), t.Modifier)
}

// IsBEM reports whether the token carries an element or modifier part.
func (t Token) IsBEM() bool {
	return t.Element != "" || t.Modifier != ""
}

// Parse splits a class token on the first "--" and the first "__" before it.
// It returns false for tokens with an empty block, element or modifier part.
func Parse(class string) (Token, bool) {
	var t Token
	base := class

	if i := strings.Index(class, ModifierSep); i >= 0 {
		base = class[:i]
		t.Modifier = class[i+len(ModifierSep):]
		if t.Modifier == "" {
			return Token{}, false
		}
	}

	if i := strings.Index(base, ElementSep); i >= 0 {
		t.Block = base[:i]
		t.Element = base[i+len(ElementSep):]
		if t.Element == "" {
			return Token{}, false
		}
	} else {
		t.Block = base
	}

	if t.Block == "" {
		return Token{}, false
	}
	return t, true
}

// GoName converts a class token to a PascalCase Go identifier.
// "alert__close-button--large" becomes "AlertCloseButtonLarge".
func GoName(class string) string {
	parts := strings.FieldsFunc(class, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})

	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}

	name := strings.Join(parts, "")
	if name == "" {
		return "Class"
	}
	if !unicode.IsLetter([]rune(name)[0]) {
		name = "C" + name
	}
	return name
}

// UniqueGoNames maps each class to a Go identifier, resolving collisions by
// adding numeric suffixes in input order. The first class keeps the plain name.
// Reserved identifiers are never handed out.
func UniqueGoNames(classes []string, reserved ...string) map[string]string {
	names := make(map[string]string, len(classes))
	used := make(map[string]int, len(classes)+len(reserved))
	for _, r := range reserved {
		used[r] = 1
	}

	for _, class := range classes {
		if _, done := names[class]; done {
			continue
		}
		name := GoName(class)
		used[name]++
		if n := used[name]; n > 1 {
			candidate := fmt.Sprintf("%s%d", name, n)
			for used[candidate] > 0 {
				n++
				candidate = fmt.Sprintf("%s%d", name, n)
			}
			used[name] = n
			used[candidate]++
			name = candidate
		}
		names[class] = name
	}

	return names
}
