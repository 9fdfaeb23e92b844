// Package main provides the wardrobe CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/wardrobe/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
