package main

import (
	"os"

	"github.com/abhisek/wordiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
