// Package comment maps file extensions and well-known file names to the
// comment markers used in concatenated-output headers. The table doubles as
// the inclusion allowlist: a file whose extension and name are both unknown
// is not eligible for concatenation.
package comment

import (
	"path/filepath"
	"strings"
)

// Marker holds the comment tokens wrapped around a header line. Line-comment
// formats repeat the same token on both sides; markup-adjacent formats carry
// a distinct closing token (e.g. "<!--" / "-->").
type Marker struct {
	Open  string
	Close string
}

// line builds a Marker for formats whose header repeats the open token.
func line(tok string) Marker {
	return Marker{Open: tok, Close: tok}
}

// Lookup resolves the comment marker for a file name. The extension
// (lowercased, with its leading dot) is consulted first, then the exact
// name, which covers conventionally extensionless files such as Makefile.
// The second return is false when the file is not eligible for inclusion.
func Lookup(name string) (Marker, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if m, ok := byExtension[ext]; ok {
		return m, true
	}
	if m, ok := byName[name]; ok {
		return m, true
	}
	return Marker{}, false
}

// Eligible reports whether a file name resolves to a marker.
func Eligible(name string) bool {
	_, ok := Lookup(name)
	return ok
}
