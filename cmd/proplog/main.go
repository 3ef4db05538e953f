package main

import (
	"os"

	"github.com/hneemann/proplog/cmd/proplog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
