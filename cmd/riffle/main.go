// Command riffle compiles CUE pipeline definitions and runs them over
// datasets loaded from YAML/JSON files or SQLite queries.
package main

import (
	"os"

	"github.com/roach88/riffle/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
