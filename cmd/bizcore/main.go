package main

import (
	"os"

	"github.com/msto63/bizcore/cmd/bizcore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
