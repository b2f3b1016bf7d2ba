package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/propcalc/tautology/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// A rejected formula was already reported along with its result.
		if !errors.Is(err, cmd.ErrRejected) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
