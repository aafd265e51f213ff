// Package main provides the bemgen CLI for BEM class names and stylesheet skeletons.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/bemgen"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Lint failures have already been reported
		if !errors.Is(err, errLintFailed) {
			fmt.Fprintln(os.Stderr, bemgen.RenderStyle(bemgen.StyleRed, "Error: "+err.Error(), useColors()))
		}
		os.Exit(1)
	}
}
