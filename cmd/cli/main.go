package main

import (
	"os"

	"github.com/de-tools/health-guide/pkg/runtime/terminal"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	})

	if err := cli.Execute(); err != nil {
		if terminal.IsInputError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
