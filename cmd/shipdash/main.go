package main

import (
	"os"

	"github.com/vdobler/shipdash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
