package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/bemgen"
)

var gogenCmd = &cobra.Command{
	Use:   "gogen",
	Short: "Generate Go constants for every class in the schema",
	Long: `Write a Go file with one constant per class (1:1 mapping) and an
AllClasses lookup map. Use the constants in templates: { ui.Alert, ui.AlertSuccess }`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		schema, err := loadSchema()
		if err != nil {
			return err
		}

		result, err := bemgen.WriteGoFile(schema, buildGoConfig())
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if !getBoolWithFallback("quiet", "quiet", false) {
			fmt.Println(bemgen.RenderStyle(bemgen.StyleGreen, "Generated "+result.Path, useColors()))
			fmt.Printf("  Constants: %d\n", result.Constants)
		}
		return nil
	},
}

func init() {
	f := gogenCmd.Flags()
	f.String("output-dir", "internal/web/ui", "Output directory for the generated file")
	f.String("package", "ui", "Go package name")
	f.String("file", "classes.gen.go", "Generated file name")
}
