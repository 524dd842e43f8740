package main

import (
	"os"

	"pairwise/cmd/pairwise/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
