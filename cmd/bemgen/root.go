package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bemgen",
	Short: "BEM class name and stylesheet skeleton generator",
	Long: `Compose BEM (Block-Element-Modifier) class names from a block schema,
generate SCSS skeletons and Go constants, and lint markup against the schema.`,
	// Default behavior: run scss when no subcommand is given.
	// PreRunE of scssCmd is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runSCSS(scssCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".bemgen.yaml", "Config file path")
	rootCmd.PersistentFlags().StringSlice("schema", []string{"bem.yaml"}, "Schema file glob patterns (YAML or JSON)")

	rootCmd.AddCommand(scssCmd)
	rootCmd.AddCommand(classCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(gogenCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
