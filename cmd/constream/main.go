// Package main provides the entry point for the constream CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Aman-CERP/constream/cmd/constream/cmd"
	"github.com/Aman-CERP/constream/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, errors.FormatForCLI(err))
		os.Exit(cmd.ExitCode(err))
	}
}
