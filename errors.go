package bemgen

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Match them with errors.Is.
var (
	ErrInvalidDefinition = errors.New("invalid BEM definition")
	ErrUnknownBlock      = errors.New("unknown block")
	ErrUnknownElement    = errors.New("unknown element")
	ErrUnknownModifier   = errors.New("unknown modifier")
)

// DefinitionError lists every structural problem found in a schema or an
// explicit block definition.
type DefinitionError struct {
	Problems []string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidDefinition, strings.Join(e.Problems, "; "))
}

// Unwrap lets errors.Is match ErrInvalidDefinition.
func (e *DefinitionError) Unwrap() error {
	return ErrInvalidDefinition
}

// LookupError reports a name that strict validation could not resolve.
type LookupError struct {
	Kind     error // ErrUnknownBlock, ErrUnknownElement or ErrUnknownModifier
	Block    string
	Element  string // empty for block-level lookups
	Modifier string // set for ErrUnknownModifier
}

func (e *LookupError) Error() string {
	switch {
	case e.Kind == ErrUnknownModifier && e.Element != "":
		return fmt.Sprintf("modifier %q is not defined in element %q of block %q", e.Modifier, e.Element, e.Block)
	case e.Kind == ErrUnknownModifier:
		return fmt.Sprintf("modifier %q is not defined in block %q", e.Modifier, e.Block)
	case e.Kind == ErrUnknownElement:
		return fmt.Sprintf("element %q is not defined in block %q", e.Element, e.Block)
	default:
		return fmt.Sprintf("block %q is not defined", e.Block)
	}
}

// Unwrap exposes the error kind.
func (e *LookupError) Unwrap() error {
	return e.Kind
}
