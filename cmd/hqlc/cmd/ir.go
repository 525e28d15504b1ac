package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hqlcompiler/hqlc/internal/compilerrors"
	"github.com/hqlcompiler/hqlc/internal/hir"
	"github.com/hqlcompiler/hqlc/internal/irdump"
	"github.com/hqlcompiler/hqlc/internal/lowering"
	"github.com/hqlcompiler/hqlc/internal/reader"
)

var irJSON bool

var irCmd = &cobra.Command{
	Use:   "ir [file]",
	Short: "Print the lowered intermediate representation of an HQL file",
	Long: `Lower an HQL file and print its intermediate representation.

Useful for debugging the lowering layer without running codegen/printing.`,
	Args: cobra.ExactArgs(1),
	RunE: runIR,
}

func init() {
	rootCmd.AddCommand(irCmd)
	irCmd.Flags().BoolVar(&irJSON, "json", true, "print as JSON (the only supported format)")
}

func runIR(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	nodes, parseErrs := reader.Parse(string(content))
	if len(parseErrs) > 0 {
		for _, pe := range parseErrs {
			fmt.Fprintln(os.Stderr, pe.Error())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(parseErrs))
	}

	ctx := hir.NewContext()
	result, err := lowering.Lower(ctx, nodes, string(content), filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, compilerrors.Wrap(err, "ir").Error())
		return fmt.Errorf("lowering failed")
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	out, err := irdump.Dump(result.Program)
	if err != nil {
		return fmt.Errorf("failed to serialize IR: %w", err)
	}
	fmt.Println(out)
	return nil
}
