// main.go
//
// pagesim entry point. Subcommands (run, compare, generate, scenarios) live in cmd/.

package main

import (
	"github.com/inference-sim/pagesim/cmd"
)

func main() {
	cmd.Execute()
}
