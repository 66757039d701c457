// Package main provides the zr command.
package main

import (
	"os"

	"github.com/adriyanbasu0/zr-sharp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
