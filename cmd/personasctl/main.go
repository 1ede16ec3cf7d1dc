package main

import (
	"errors"
	"fmt"
	"os"

	"personas/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand(os.Stdout, cli.OpenFromEnv)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var withExitCode interface{ ExitCode() int }
		if errors.As(err, &withExitCode) {
			os.Exit(withExitCode.ExitCode())
		}
		os.Exit(1)
	}
}
