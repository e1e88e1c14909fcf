// Command joincheck verifies join engine output against a reference join.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/joincheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
