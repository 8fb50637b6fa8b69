package main

import (
	"os"

	"github.com/oraschemagen/oraschemagen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
