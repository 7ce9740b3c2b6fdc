package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/contentview/internal/cli"
	"github.com/rshade/contentview/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// extractExitCode maps an error to the process exit code. Errors carrying a
// *cli.ExitError keep their code; anything else exits 1.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func main() {
	err := run()
	if err == nil {
		return
	}
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(extractExitCode(err))
}
