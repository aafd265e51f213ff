package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/bemgen"
)

var scssCmd = &cobra.Command{
	Use:     "scss",
	Aliases: []string{"gen"},
	Short:   "Generate an SCSS skeleton from the schema",
	Long: `Write one nested rule per block, block modifier, element and element
modifier to <output>.scss, optionally wrapped in an @layer block.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runSCSS,
}

func init() {
	f := scssCmd.Flags()
	f.StringP("output", "o", "styles/bem", "Output path without the .scss extension")
	f.String("layer", "", "Wrap rules in @layer <name> (an empty name is ignored with a warning)")
}

func runSCSS(cmd *cobra.Command, _ []string) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	output := getStringWithFallback("output", "scss.output", "styles/bem")
	result, err := bemgen.WriteSCSS(schema, output, bemgen.SCSSOptions{Layer: resolveLayer(cmd)})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Println(bemgen.RenderStyle(bemgen.StyleGreen, "Generated "+result.Path, useColors()))
		fmt.Printf("  Blocks: %d\n", result.Blocks)
		fmt.Printf("  Rules: %d\n", result.Rules)
	}

	return nil
}
