package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hqlcompiler/hqlc/internal/logging"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hqlc",
	Short: "HQL to JavaScript compiler",
	Long: `hqlc compiles HQL, a Lisp-dialect source language, to plain JavaScript.

HQL programs are read as s-expressions, lowered to a small intermediate
representation, converted to a JavaScript-shaped AST, and printed as
deterministic, readable JS — no runtime interpreter, no bytecode, a single
source-to-source pass.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cobra.OnInitialize(func() {
		logging.SetVerbose(verbose)
	})
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
