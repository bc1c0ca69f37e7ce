// Command brcagg computes per-station min/mean/max over a measurements file.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/brcagg/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
