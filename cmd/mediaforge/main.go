// Package main provides the mediaforge CLI entrypoint.
package main

import (
	"os"

	"github.com/mediastack-labs/mediaforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
