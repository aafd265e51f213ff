package bemgen

import (
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/yacobolo/bemgen/internal/bemname"
)

// GoConfig configures Go constant generation.
type GoConfig struct {
	OutputDir   string // "internal/web/ui"
	PackageName string // "ui"
	FileName    string // default "classes.gen.go"
}

// GoResult describes a written constants file.
type GoResult struct {
	Path      string
	Constants int
}

// RenderGo returns gofmt'ed Go source declaring one constant per class of
// schema and an AllClasses lookup map.
//
//	alert            -> Alert = "alert"
//	alert--success   -> AlertSuccess = "alert--success"
//	alert__icon      -> AlertIcon = "alert__icon"
func RenderGo(schema *Schema, packageName string) ([]byte, error) {
	if !token.IsIdentifier(packageName) {
		return nil, fmt.Errorf("invalid package name %q", packageName)
	}

	infos := uniqueClasses(Catalogue(schema))
	classes := make([]string, len(infos))
	for i, info := range infos {
		classes[i] = info.Class
	}
	names := bemname.UniqueGoNames(classes, allClassesVar)

	var sb strings.Builder
	sb.WriteString("// Code generated by bemgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", packageName)

	if len(infos) > 0 {
		sb.WriteString("const (\n")
		block := ""
		for _, info := range infos {
			if info.Block != block {
				if block != "" {
					sb.WriteString("\n")
				}
				fmt.Fprintf(&sb, "\t// %s block\n", info.Block)
				block = info.Block
			}
			fmt.Fprintf(&sb, "\t%s = %q\n", names[info.Class], info.Class)
		}
		sb.WriteString(")\n\n")
	}

	fmt.Fprintf(&sb, "// %s lists every class declared by the schema.\n", allClassesVar)
	fmt.Fprintf(&sb, "var %s = map[string]bool{\n", allClassesVar)
	for _, class := range classes {
		fmt.Fprintf(&sb, "\t%q: true,\n", class)
	}
	sb.WriteString("}\n")

	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

// allClassesVar names the generated lookup map; no constant may take it.
const allClassesVar = "AllClasses"

// uniqueClasses drops catalogue entries whose class string was already seen.
// Block "a__b" and element "b" of block "a" both produce "a__b".
func uniqueClasses(infos []ClassInfo) []ClassInfo {
	seen := make(map[string]bool, len(infos))
	out := make([]ClassInfo, 0, len(infos))
	for _, info := range infos {
		if seen[info.Class] {
			continue
		}
		seen[info.Class] = true
		out = append(out, info)
	}
	return out
}

// WriteGoFile renders the constants file and writes it into config.OutputDir.
func WriteGoFile(schema *Schema, config GoConfig) (*GoResult, error) {
	src, err := RenderGo(schema, config.PackageName)
	if err != nil {
		return nil, err
	}

	name := config.FileName
	if name == "" {
		name = "classes.gen.go"
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(config.OutputDir, name)
	// #nosec G306 - generated source files are meant to be world-readable
	if err := os.WriteFile(path, src, 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	return &GoResult{Path: path, Constants: len(uniqueClasses(Catalogue(schema)))}, nil
}
