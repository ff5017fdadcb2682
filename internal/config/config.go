// Package config parses command-line arguments into application settings.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// OutputExtension is the conventional suffix enforced on the output file.
const OutputExtension = ".txt"

// Config holds all application configuration settings
type Config struct {
	// Positional arguments
	InputDir   string
	OutputFile string

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	// Version info
	ShowVersion bool
	Version     string
}

// New creates a Config from os.Args.
func New() (*Config, error) {
	return Parse(os.Args[1:])
}

// Parse creates a Config from the given argument list. The core contract is
// two positionals: the input directory to scan and the output file to
// write. Flags only tune logging and reporting; they never change which
// files are concatenated.
func Parse(args []string) (*Config, error) {
	c := &Config{
		Version: "1.0.0", // Update this when releasing new versions
	}

	fs := flag.NewFlagSet("treecat", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: treecat [flags] <input-directory> <output-file>\n\n")
		fmt.Fprintf(fs.Output(), "Concatenate a project's text files into one file, each prefixed\nwith a comment header naming its path.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG and up)")
	fs.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	fs.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show a list of skipped files and reasons at the end")
	fs.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())

	if c.ShowVersion {
		return c, nil
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return nil, fmt.Errorf("config: expected 2 arguments (input directory, output file), got %d", fs.NArg())
	}
	c.InputDir = fs.Arg(0)
	c.OutputFile = fs.Arg(1)

	return c, nil
}
