package main

import (
	"fmt"
	"os"

	"github.com/spherical/pdf-to-image/cmd/pdf-to-image/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
