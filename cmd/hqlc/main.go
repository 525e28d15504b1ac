// Command hqlc compiles HQL source files to JavaScript.
package main

import (
	"fmt"
	"os"

	"github.com/hqlcompiler/hqlc/cmd/hqlc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
