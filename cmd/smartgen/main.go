// Package main provides the smartgen command.
package main

import (
	"os"

	"github.com/leapstack-labs/smartgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
