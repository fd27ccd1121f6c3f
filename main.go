package main

import (
	"os"

	"github.com/mateusz-blaszkowski/log-tuner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
