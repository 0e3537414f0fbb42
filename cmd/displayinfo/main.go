package main

import (
	"os"

	"displayinfo/cmd/displayinfo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
