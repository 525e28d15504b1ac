package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hqlcompiler/hqlc/internal/compilerrors"
	"github.com/hqlcompiler/hqlc/internal/config"
	"github.com/hqlcompiler/hqlc/internal/printer"
	"github.com/hqlcompiler/hqlc/pkg/compiler"
)

var (
	buildOutputFile string
	buildStyle      string
	buildIndent     int
	buildTabs       bool
	buildWithRuntime bool
)

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Compile an HQL file to JavaScript",
	Long: `Compile an HQL source file to plain JavaScript.

Examples:
  # Compile to script.js
  hqlc build script.hql

  # Compile with a custom output file
  hqlc build script.hql -o out/bundle.js

  # Compile and prepend the get/getNumeric runtime helpers
  hqlc build script.hql --with-runtime`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutputFile, "output", "o", "", "output file (default: <input>.js)")
	buildCmd.Flags().StringVar(&buildStyle, "style", "", "printer style: detailed, compact, or multiline")
	buildCmd.Flags().IntVar(&buildIndent, "indent", 0, "indent width (default from config or 2)")
	buildCmd.Flags().BoolVar(&buildTabs, "tabs", false, "indent with tabs instead of spaces")
	buildCmd.Flags().BoolVar(&buildWithRuntime, "with-runtime", false, "prepend the embedded get/getNumeric runtime helpers")
}

func runBuild(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg, err := config.Discover(filepath.Dir(filename))
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", config.FileName, err)
	}
	opts := compiler.Options{
		FilePath:    filename,
		Printer:     cfg.PrinterOptions(),
		WithRuntime: buildWithRuntime,
	}
	applyPrinterFlags(&opts.Printer)

	if verbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", filename)
	}

	eng := compiler.New()
	result, err := eng.Compile(string(content), opts)
	if err != nil {
		if ce, ok := err.(*compiler.CompileError); ok {
			fmt.Fprintln(os.Stderr, compilerrors.FormatAll(ce.Errors))
			return fmt.Errorf("%s failed", ce.Stage)
		}
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	outFile := buildOutputFile
	if outFile == "" {
		ext := filepath.Ext(filename)
		if ext != "" {
			outFile = strings.TrimSuffix(filename, ext) + ".js"
		} else {
			outFile = filename + ".js"
		}
	}

	if err := os.WriteFile(outFile, []byte(result.JS), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "JavaScript written to %s (%d bytes)\n", outFile, len(result.JS))
	} else {
		fmt.Printf("Compiled %s -> %s\n", filename, outFile)
	}
	return nil
}

// applyPrinterFlags overrides opts with any printer-related flag the user
// actually set, leaving config-file/defaults in place otherwise.
func applyPrinterFlags(opts *printer.Options) {
	switch buildStyle {
	case "compact":
		opts.Style = printer.StyleCompact
	case "multiline":
		opts.Style = printer.StyleMultiline
	case "detailed":
		opts.Style = printer.StyleDetailed
	}
	if buildIndent > 0 {
		opts.IndentWidth = buildIndent
	}
	if buildTabs {
		opts.UseSpaces = false
	}
}
