package main

import (
	"os"

	"github.com/nestdotland/nest-analyzer/cmd"
)

var Version = "dev"

func main() {
	os.Exit(cmd.RunApp(Version, os.Args[1:]))
}
