package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/bemgen"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List every class the schema declares",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		schema, err := loadSchema()
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch bemgen.CatalogueFormat(format) {
		case bemgen.CatalogueText, bemgen.CatalogueJSON:
		default:
			return fmt.Errorf("unknown format %q (want text or json)", format)
		}

		return bemgen.WriteCatalogue(cmd.OutOrStdout(), schema, bemgen.CatalogueFormat(format))
	},
}

func init() {
	classesCmd.Flags().String("format", "text", "Output format: text|json")
}
