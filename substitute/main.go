// Command substitute replaces {name} and {"literal"} placeholders in text given on the command line
package main

import (
	"fmt"
	"os"

	"github.com/lyraproj/subst/cli"
)

func main() {
	cmd := cli.NewCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
