package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/bemgen"
)

var classCmd = &cobra.Command{
	Use:   "class BLOCK [ELEMENT]",
	Short: "Print the class string for a block or element",
	Long: `Compose the BEM class string for a block, or an element of a block,
with the given modifiers turned on. The schema is used when present;
--strict requires it and rejects undeclared names.`,
	Example: `  bemgen class alert --mod success
  bemgen class alert icon --mod large --strict`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runClass,
}

func init() {
	f := classCmd.Flags()
	f.StringSliceP("mod", "m", nil, "Modifiers to turn on")
	f.Bool("strict", false, "Reject names the schema does not declare")
}

func runClass(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	mods, _ := cmd.Flags().GetStringSlice("mod")

	opts := bemgen.Options{Validation: bemgen.ValidationLoose}
	var schema *bemgen.Schema
	var err error
	if strict {
		opts.Validation = bemgen.ValidationStrict
		schema, err = loadSchema()
	} else {
		schema, err = loadOptionalSchema()
	}
	if err != nil {
		return err
	}

	gen, err := bemgen.NewGenerator(schema, opts)
	if err != nil {
		return err
	}

	flags := make(bemgen.Flags, len(mods))
	for _, m := range mods {
		flags[m] = true
	}

	block := gen.ForBlock(args[0])
	var class string
	if len(args) == 2 {
		class, err = block.Element(args[1], flags)
	} else {
		class, err = block.Block(flags)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), class)
	return nil
}
