package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirt/internal/cli"
)

// version is set at build time.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
