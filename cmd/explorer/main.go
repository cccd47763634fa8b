package main

import (
	"os"

	"github.com/thep200/github-explorer/cmd/explorer/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
