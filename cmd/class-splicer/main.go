// Command class-splicer converts class-based source text between one merged
// submission file and a directory of per-type files. See internal/cli for
// the available subcommands.
package main

import "class-splicer/internal/cli"

func main() {
	cli.Execute()
}
