package main

import "pramaan/internal/cli"

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
