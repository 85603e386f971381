package main

import (
	"os"

	"github.com/patchline/patchline/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
