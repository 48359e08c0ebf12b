package main

import (
	"os"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
