// Package bemgen composes BEM (Block-Element-Modifier) class names and
// generates stylesheet skeletons from a block schema.
//
// # Class names
//
// A Generator composes class strings. Modifiers set to true are appended to
// the base token with the "--" separator; elements use "__".
//
//	gen, err := bemgen.NewGenerator(schema, bemgen.Options{Validation: bemgen.ValidationStrict})
//	class, err := gen.Block("alert", bemgen.Flags{"success": true})
//	// "alert alert--success"
//	class, err = gen.Element("alert", "icon", bemgen.Flags{"large": true})
//	// "alert__icon alert__icon--large"
//
//	icon := gen.ForBlock("alert").ForElement("icon")
//	class, err = icon.Class(nil) // "alert__icon"
//
// Loose validation (the default) composes any name. Strict validation
// rejects blocks, elements and modifiers the schema does not declare with
// ErrUnknownBlock, ErrUnknownElement or ErrUnknownModifier.
//
// # Stylesheet skeletons
//
// WriteSCSS writes one nested rule per block, element and modifier:
//
//	_, err := bemgen.WriteSCSS(schema, "styles/alert", bemgen.SCSSOptions{Layer: bemgen.Layer("components")})
//
// # Schema files
//
// LoadSchemas reads YAML or JSON schema files selected by doublestar globs.
//
// # CLI Tool
//
// bemgen also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/bemgen/cmd/bemgen@latest
package bemgen
