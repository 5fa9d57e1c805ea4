package main

import (
	"os"

	"github.com/fleetlog/go-hos-timeline/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
