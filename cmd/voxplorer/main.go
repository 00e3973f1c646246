package main

import (
	"os"

	"voxplorer/cmd/voxplorer/cli"
)

var version = "dev"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}
