package main

import (
	"fmt"
	"os"

	"github.com/temirov/reposcan/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the reposcan command-line application and exits with the resolved status code.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(cli.ExitCode(executionError))
	}
}
