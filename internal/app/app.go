// Package app wires configuration, rules, walking, and output together.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dwalters/treecat/internal/comment"
	"github.com/dwalters/treecat/internal/config"
	"github.com/dwalters/treecat/internal/logger"
	"github.com/dwalters/treecat/internal/printer"
	"github.com/dwalters/treecat/internal/rules"
	"github.com/dwalters/treecat/internal/summary"
	"github.com/dwalters/treecat/internal/walker"
	"github.com/fatih/color"
)

// App encapsulates one concatenation run.
type App struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates an App instance from parsed configuration.
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	level := logger.LevelInfo
	if cfg.Verbose {
		level = logger.LevelDebug
	}
	if cfg.Quiet {
		level = logger.LevelWarn
	}
	log := logger.New(os.Stderr, level, cfg.UseColors)

	// An explicit log level overrides the verbose/quiet flags
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	}

	return &App{
		cfg: cfg,
		log: log,
	}
}

// Run executes the concatenation. Configuration errors and failure to open
// the output file are fatal and returned; per-file read failures are
// recorded inline in the output and never abort the run.
func (a *App) Run() error {
	startTime := time.Now()

	if a.cfg.ShowVersion {
		fmt.Printf("treecat version %s\n", a.cfg.Version)
		return nil
	}

	// --- Input directory validation ---
	absInputDir, err := filepath.Abs(a.cfg.InputDir)
	if err != nil {
		a.log.Error("Invalid input directory path '%s': %v", a.cfg.InputDir, err)
		return fmt.Errorf("app: invalid input directory '%s': %w", a.cfg.InputDir, err)
	}
	dirInfo, err := os.Stat(absInputDir)
	if err != nil {
		if os.IsNotExist(err) {
			a.log.Error("Input directory '%s' not found.", absInputDir)
		} else {
			a.log.Error("Could not access input directory '%s': %v", absInputDir, err)
		}
		return fmt.Errorf("app: cannot access input directory '%s': %w", absInputDir, err)
	}
	if !dirInfo.IsDir() {
		a.log.Error("Specified path '%s' is not a directory.", absInputDir)
		return fmt.Errorf("app: '%s' is not a directory", absInputDir)
	}

	// --- Output name enforcement ---
	outputFile := a.cfg.OutputFile
	if filepath.Ext(outputFile) != config.OutputExtension {
		a.log.Warn("Output filename does not end with '%s'. Appending '%s'.",
			config.OutputExtension, config.OutputExtension)
		outputFile += config.OutputExtension
	}
	absOutputFile, err := filepath.Abs(outputFile)
	if err != nil {
		a.log.Error("Invalid output file path '%s': %v", outputFile, err)
		return fmt.Errorf("app: invalid output file '%s': %w", outputFile, err)
	}

	// --- Ignore rules ---
	ruleSet := rules.FromPatterns(nil)
	if rulesPath, found := rules.Locate(absInputDir); found {
		loaded, loadErr := rules.Load(rulesPath)
		if loadErr != nil {
			// An unreadable rules file is treated like a missing one.
			a.log.Warn("Could not read rules file '%s': %v. Proceeding without ignore rules.", rulesPath, loadErr)
		} else {
			ruleSet = loaded
			a.log.Info("Using ignore rules from '%s' (%d patterns).", rulesPath, ruleSet.Len())
		}
	} else {
		a.log.Info("No rules file found. Proceeding without ignore rules.")
	}

	// --- Open the output ---
	out, err := os.Create(absOutputFile)
	if err != nil {
		a.log.Error("Failed to create output file '%s': %v", absOutputFile, err)
		return fmt.Errorf("app: failed to create output file '%s': %w", absOutputFile, err)
	}
	defer out.Close()

	p := printer.New(out)

	// Per-file callback: read errors become inline blocks, everything else
	// becomes a header+content block. Only write failures propagate.
	printFunc := func(path, relPath string, content []byte, readErr error) error {
		marker, _ := comment.Lookup(filepath.Base(path))
		if readErr != nil {
			a.log.Warn("Recording read failure for '%s': %v", relPath, readErr)
			return p.PrintReadError(path, marker, readErr)
		}
		a.log.Debug("Writing block for '%s' (%d bytes)", relPath, len(content))
		return p.PrintFile(path, marker, content)
	}

	a.log.Info("Scanning directory: %s", absInputDir)
	skippedItems, err := walker.Walk(absInputDir, ruleSet, printFunc,
		walker.WithLogger(a.log),
		walker.WithEligible(comment.Eligible),
	)
	if err != nil {
		a.log.Error("Critical error during directory walk: %v", err)
		return fmt.Errorf("app: directory walk failed: %w", err)
	}

	summary.DisplayResults(a.log, p.Count(), time.Since(startTime))
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skippedItems, os.Stderr)
	}
	a.log.Info("All files from '%s' concatenated to '%s'.", absInputDir, absOutputFile)

	return nil
}
