// Command ghost runs certification scenarios and inspects audit stores.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/ghost/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
