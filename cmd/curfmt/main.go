// Command curfmt formats amounts as localized currency with the symbol first.
package main

import (
	"fmt"
	"os"

	"github.com/rpgo/curfmt/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
