package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/bemgen"
)

var k = koanf.New(".")

var defaultSchemaPatterns = []string{"bem.yaml"}

var defaultLintPaths = []string{
	"internal/web/**/*.templ",
	"internal/web/**/*.go",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".bemgen.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence). Unchanged flags are skipped so their
	// defaults never shadow config file keys in the *WithFallback lookups.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// Environment variables (BEMGEN_* prefix)
	if err := k.Load(env.Provider("BEMGEN_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKeyReplacer maps a double underscore to a hyphen before single
// underscores become path separators.
var envKeyReplacer = strings.NewReplacer("__", "-", "_", ".")

// envKey maps an environment variable to its config key:
//
//	BEMGEN_SCSS_LAYER             -> scss.layer
//	BEMGEN_GO_OUTPUT__DIR         -> go.output-dir
//	BEMGEN_LINT_MAX__SAME__ISSUES -> lint.max-same-issues
func envKey(s string) string {
	return envKeyReplacer.Replace(strings.ToLower(strings.TrimPrefix(s, "BEMGEN_")))
}

// getStrings reads a list key. A scalar value, as set by an environment
// variable or a single-valued YAML key, is split on commas.
func getStrings(key string) []string {
	if values := k.Strings(key); len(values) > 0 {
		return values
	}
	var values []string
	for _, v := range strings.Split(k.String(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// schemaPatterns returns the configured schema globs.
func schemaPatterns() []string {
	if patterns := getStrings("schema"); len(patterns) > 0 {
		return patterns
	}
	return defaultSchemaPatterns
}

// loadSchema loads and merges the configured schema files.
func loadSchema() (*bemgen.Schema, error) {
	schema, files, err := bemgen.LoadSchemas(schemaPatterns())
	if err != nil {
		return nil, err
	}

	if getBoolWithFallback("verbose", "verbose", false) {
		for _, f := range files {
			fmt.Fprintf(os.Stderr, "Loaded schema %s\n", f)
		}
	}
	return schema, nil
}

// loadOptionalSchema is loadSchema, but a missing schema file yields nil.
func loadOptionalSchema() (*bemgen.Schema, error) {
	schema, err := loadSchema()
	if errors.Is(err, bemgen.ErrNoSchemaFiles) {
		return nil, nil
	}
	return schema, err
}

// resolveLayer distinguishes an unset layer (nil) from an empty one.
// An explicit --layer flag wins over the scss.layer config key.
func resolveLayer(cmd *cobra.Command) *string {
	if f := cmd.Flags().Lookup("layer"); f != nil && f.Changed {
		return bemgen.Layer(f.Value.String())
	}
	if k.Exists("scss.layer") {
		return bemgen.Layer(k.String("scss.layer"))
	}
	return nil
}

// buildGoConfig constructs the library's GoConfig from koanf state.
func buildGoConfig() bemgen.GoConfig {
	return bemgen.GoConfig{
		OutputDir:   getStringWithFallback("output-dir", "go.output-dir", "internal/web/ui"),
		PackageName: getStringWithFallback("package", "go.package", "ui"),
		FileName:    getStringWithFallback("file", "go.file", "classes.gen.go"),
	}
}

// buildLintConfig constructs the library's LintConfig from koanf state.
func buildLintConfig() bemgen.LintConfig {
	var scanPaths []string
	if paths := getStrings("paths"); len(paths) > 0 {
		scanPaths = paths
	} else if paths := getStrings("lint.paths"); len(paths) > 0 {
		scanPaths = paths
	} else {
		scanPaths = defaultLintPaths
	}

	return bemgen.LintConfig{
		ScanPaths:          scanPaths,
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

func useColors() bool {
	return bemgen.ShouldUseColors(getBoolWithFallback("color", "color", false))
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
