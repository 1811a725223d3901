package main

import (
	"os"

	"pinopoly/cmd/pinopoly/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
