package main

import (
	"os"

	"github.com/Sw1zzi/cdsl-visual-tester/cmd/cdsl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
