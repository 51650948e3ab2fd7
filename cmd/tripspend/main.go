package main

import (
	"os"

	"tripspend/cmd/tripspend/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
