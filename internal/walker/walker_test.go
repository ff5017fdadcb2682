package walker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwalters/treecat/internal/comment"
	"github.com/dwalters/treecat/internal/rules"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

type visit struct {
	relPath string
	content string
	err     error
}

func collect(t *testing.T, root string, rs *rules.RuleSet, opts ...Option) ([]visit, []SkippedItem) {
	t.Helper()
	var visits []visit
	skipped, err := Walk(root, rs, func(path, relPath string, content []byte, err error) error {
		visits = append(visits, visit{relPath: relPath, content: string(content), err: err})
		return nil
	}, opts...)
	require.NoError(t, err)
	return visits, skipped
}

func relPaths(visits []visit) []string {
	out := make([]string, 0, len(visits))
	for _, v := range visits {
		out = append(out, filepath.ToSlash(v.relPath))
	}
	return out
}

func TestWalkVisitsEligibleFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.py"), "print(1)")
	writeFile(t, filepath.Join(root, "sub", "b.go"), "package b")

	visits, skipped := collect(t, root, rules.FromPatterns(nil))

	assert.ElementsMatch(t, []string{"a.py", "sub/b.go"}, relPaths(visits))
	assert.Empty(t, skipped)
	for _, v := range visits {
		assert.NoError(t, v.err)
		assert.NotEmpty(t, v.content)
	}
}

func TestWalkAppliesIgnoreRules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.py"), "print(1)")
	writeFile(t, filepath.Join(root, "app.log"), "log line")

	visits, skipped := collect(t, root, rules.FromPatterns([]string{"*.log"}))

	assert.Equal(t, []string{"app.py"}, relPaths(visits))
	require.Len(t, skipped, 1)
	assert.Equal(t, "app.log", skipped[0].Path)
	assert.Equal(t, ReasonIgnoredRule, skipped[0].Reason)
}

func TestWalkAppliesEligibilityFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.py"), "print(1)")
	writeFile(t, filepath.Join(root, "a.pyc"), "\x00\x01")

	visits, skipped := collect(t, root, rules.FromPatterns(nil), WithEligible(comment.Eligible))

	assert.Equal(t, []string{"a.py"}, relPaths(visits))
	require.Len(t, skipped, 1)
	assert.Equal(t, "a.pyc", skipped[0].Path)
	assert.Equal(t, ReasonFilteredType, skipped[0].Reason)
}

func TestWalkDoesNotPruneDirectoriesOnRuleMatch(t *testing.T) {
	// A pattern naming a directory does not hide the files beneath it;
	// only their own relative paths and bare names are tested.
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "vendor", "lib.go"), "package lib")

	visits, _ := collect(t, root, rules.FromPatterns([]string{"vendor"}))

	assert.Equal(t, []string{"vendor/lib.go"}, relPaths(visits))
}

func TestWalkIgnoreRulesCanStillReachNestedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "vendor", "lib.go"), "package lib")
	writeFile(t, filepath.Join(root, "vendor", "deep", "x.go"), "package x")

	// '*' is not path-aware, so vendor/* covers any depth.
	visits, _ := collect(t, root, rules.FromPatterns([]string{"vendor/*"}))

	assert.Empty(t, relPaths(visits))
}

func TestWalkReportsReadErrorsToCallback(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed when running as root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "secret.py")
	writeFile(t, locked, "hidden")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o644) })

	visits, skipped := collect(t, root, rules.FromPatterns(nil))

	require.Len(t, visits, 1)
	assert.Equal(t, "secret.py", visits[0].relPath)
	assert.Error(t, visits[0].err)
	assert.Empty(t, visits[0].content)

	// The file reaches the callback, so it is accounted for in the output
	// and must not show up in the skip report as well.
	assert.Empty(t, skipped)
}

func TestWalkCallbackErrorAbortsWalk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.py"), "print(1)")
	writeFile(t, filepath.Join(root, "b.py"), "print(2)")

	sentinel := errors.New("write failed")
	calls := 0
	_, err := Walk(root, rules.FromPatterns(nil), func(path, relPath string, content []byte, err error) error {
		calls++
		return sentinel
	})

	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "gone"), rules.FromPatterns(nil),
		func(path, relPath string, content []byte, err error) error { return nil })
	require.Error(t, err)
}
