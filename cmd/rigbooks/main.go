package main

import (
	"os"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
