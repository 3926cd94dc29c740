package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/shelf/internal/cli"
	"github.com/mrlokans/shelf/internal/config"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	if err := cli.Execute(cfg, Version+" ("+Commit+")", os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
