package main

import (
	"os"

	"github.com/rustyeddy/optrisk/cmd/optrisk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
