package main

import (
	"os"

	"nightlight/internal/adapter/primary/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr))
}
