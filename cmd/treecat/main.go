package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dwalters/treecat/internal/app"
	"github.com/dwalters/treecat/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	// Load configuration from command-line arguments
	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	// Create and run the application
	application := app.New(cfg)
	if err := application.Run(); err != nil {
		return 1
	}
	return 0
}
