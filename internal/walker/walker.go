// Package walker handles directory traversal and per-file gating.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dwalters/treecat/internal/rules"
)

// WalkFunc is the callback invoked for every file that passes the ignore
// and eligibility gates. path is absolute, relPath is relative to the walk
// root. When the file's content could not be read, content is nil and err
// carries the read failure; the walk continues either way. An error
// returned by the callback aborts the walk.
type WalkFunc func(path, relPath string, content []byte, err error) error

// Walk traverses the tree under rootDir sequentially, in the order
// filepath.WalkDir yields entries. Directories are never pruned by ignore
// rules: a pattern naming a directory does not exclude the files beneath it
// unless it also matches their relative paths or bare names. It returns the
// list of skipped entries and any error that aborted the traversal.
func Walk(rootDir string, ruleSet *rules.RuleSet, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: failed to get absolute path for '%s': %w", rootDir, err)
	}

	tracker := NewSkippedTracker(64)

	options.Logger.Debug("walker.Walk started. Root: %s", absRootDir)

	walkErr := filepath.WalkDir(absRootDir, func(path string, d fs.DirEntry, err error) error {
		if path == absRootDir {
			return err
		}

		relPath, relErr := filepath.Rel(absRootDir, path)
		if relErr != nil {
			options.Logger.Error("walker: path calculation failed for %q: %v", path, relErr)
			tracker.Track(path, ReasonSkippedPathError, d != nil && d.IsDir())
			return nil
		}

		isDir := d != nil && d.IsDir()

		if err != nil {
			reason := ReasonSkippedWalkError
			if os.IsPermission(err) {
				reason = ReasonSkippedPermError
			}
			options.Logger.Warn("walker: error at %q: %v", relPath, err)
			tracker.Track(relPath, reason, isDir)
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		if isDir {
			options.Logger.Debug("walker: descending into %q", relPath)
			return nil
		}

		if !d.Type().IsRegular() {
			options.Logger.Debug("walker: skipping %q: not a regular file", relPath)
			tracker.Track(relPath, ReasonSkippedNotRegular, false)
			return nil
		}

		if ruleSet.Match(relPath) {
			options.Logger.Debug("walker: ignored %q by rule", relPath)
			tracker.Track(relPath, ReasonIgnoredRule, false)
			return nil
		}

		if options.Eligible != nil && !options.Eligible(d.Name()) {
			options.Logger.Debug("walker: filtered %q: no comment syntax for file type", relPath)
			tracker.Track(relPath, ReasonFilteredType, false)
			return nil
		}

		// A failed read is not tracked as skipped: the callback still
		// accounts for the file in the output artifact.
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			options.Logger.Warn("walker: failed to read %q: %v", relPath, readErr)
			return walkFn(path, relPath, nil, readErr)
		}

		options.Logger.Debug("walker: read %q (%d bytes)", relPath, len(content))
		return walkFn(path, relPath, content, nil)
	})

	return tracker.Items(), walkErr
}
