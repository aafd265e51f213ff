package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .bemgen.yaml config file",
	Long: `Create a .bemgen.yaml configuration file in the current directory with sensible defaults.
With --schema-example, also create an example bem.yaml schema.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		withSchema, _ := cmd.Flags().GetBool("schema-example")

		if err := writeDefaultFile(".bemgen.yaml", defaultConfig, force); err != nil {
			return err
		}
		fmt.Println("Created .bemgen.yaml")

		if withSchema {
			if err := writeDefaultFile("bem.yaml", exampleSchema, force); err != nil {
				return err
			}
			fmt.Println("Created bem.yaml")
		}
		return nil
	},
}

func writeDefaultFile(path, content string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	// #nosec G306 - config files are meant to be world-readable
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

const defaultConfig = `# bemgen configuration
# Docs: https://github.com/yacobolo/bemgen
# Env overrides: BEMGEN_SCSS_LAYER -> scss.layer, BEMGEN_GO_OUTPUT__DIR -> go.output-dir

# Shared settings
schema:
  - bem.yaml
verbose: false

# SCSS skeleton settings
scss:
  output: styles/bem       # written as styles/bem.scss
  # layer: components      # wrap rules in @layer components { ... }

# Go constants settings
go:
  output-dir: internal/web/ui
  package: ui
  file: classes.gen.go

# Linting settings
lint:
  paths:
    - "internal/web/**/*.templ"
    - "internal/web/**/*.go"
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

const exampleSchema = `alert:
  modifiers: [msg, card, hasCloser, default, error, info, warning, success, variant]
  elements:
    container: ~
    container-content: ~
    container-heading:
      modifiers: [h0, h1, h2, h3, h4, h5, h6]
    close-button:
      modifiers: [close]
    content: ~
    heading: ~
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	initCmd.Flags().Bool("schema-example", false, "Also create an example bem.yaml schema")
}
