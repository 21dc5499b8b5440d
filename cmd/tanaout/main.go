// Command tanaout converts a graph note export into outline pages.
package main

import (
	"os"

	"github.com/aidanlsb/tanaout/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
