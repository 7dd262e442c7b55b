package main

import (
	"os"

	"receiptomatic/cmd/receiptomatic/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
