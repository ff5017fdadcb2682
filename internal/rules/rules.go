// Package rules locates, parses, and applies ignore rules.
//
// The rules file is a flat list of shell-glob patterns, one per line, found
// by searching upward from the scanned directory. Matching is deliberately
// simpler than full gitignore semantics: no negation, no anchoring, no
// directory-only patterns, no "**". A file is ignored when any pattern
// matches either its root-relative path or its bare name.
package rules

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// FileName is the conventional name of the rules file.
const FileName = ".gitignore"

// RuleSet holds the ignore patterns for one run, in file order.
type RuleSet struct {
	patterns []string
}

// Locate searches startDir and each of its ancestors, nearest first, for a
// rules file. It returns the path of the first one found. Absence is a
// normal outcome, reported through the boolean, never an error.
func Locate(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Load reads a rules file and returns its patterns: each line trimmed of
// surrounding whitespace, with blank lines and '#' comments dropped.
func Load(rulesPath string) (*RuleSet, error) {
	f, err := os.Open(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("rules: failed to open rules file '%s': %w", rulesPath, err)
	}
	defer f.Close()

	rs := &RuleSet{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rs.patterns = append(rs.patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("rules: failed to read rules file '%s': %w", rulesPath, err)
	}
	return rs, nil
}

// FromPatterns builds a RuleSet from already-parsed patterns.
func FromPatterns(patterns []string) *RuleSet {
	return &RuleSet{patterns: patterns}
}

// Match reports whether relPath is ignored. Each pattern is tested against
// the slash-normalized relative path and against the bare file name; the
// first hit short-circuits. A nil or empty RuleSet matches nothing.
func (r *RuleSet) Match(relPath string) bool {
	if r == nil || len(r.patterns) == 0 {
		return false
	}
	unixPath := filepath.ToSlash(relPath)
	base := path.Base(unixPath)
	for _, pattern := range r.patterns {
		if fnmatch.Match(pattern, unixPath, 0) || fnmatch.Match(pattern, base, 0) {
			return true
		}
	}
	return false
}

// Len returns the number of patterns in the set.
func (r *RuleSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.patterns)
}

// Patterns returns a copy of the pattern list, in file order.
func (r *RuleSet) Patterns() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.patterns))
	copy(out, r.patterns)
	return out
}
