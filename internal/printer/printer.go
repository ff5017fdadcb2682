// Package printer emits header+content blocks to the output artifact.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/dwalters/treecat/internal/comment"
)

// Printer writes one block per concatenated file: a header line naming the
// file, wrapped in that file type's comment markers, then the decoded
// content, then a blank line. It owns the output writer for the run.
type Printer struct {
	output io.Writer
	count  int64
}

// New creates a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{output: out}
}

// PrintFile writes the header and content block for one file. Invalid
// UTF-8 byte sequences in the content are dropped rather than failing the
// run.
func (p *Printer) PrintFile(path string, m comment.Marker, content []byte) error {
	if err := p.header(path, m); err != nil {
		return err
	}
	text := strings.ToValidUTF8(string(content), "")
	if _, err := fmt.Fprintf(p.output, "%s\n\n", text); err != nil {
		return fmt.Errorf("printer: failed to write content for '%s': %w", path, err)
	}
	p.count++
	return nil
}

// PrintReadError writes a substitute block for a file whose content could
// not be read, so the artifact still accounts for it.
func (p *Printer) PrintReadError(path string, m comment.Marker, readErr error) error {
	if _, err := fmt.Fprintf(p.output, "%s Could not read file: %s - Error: %v %s\n\n",
		m.Open, path, readErr, m.Close); err != nil {
		return fmt.Errorf("printer: failed to write error block for '%s': %w", path, err)
	}
	p.count++
	return nil
}

func (p *Printer) header(path string, m comment.Marker) error {
	if _, err := fmt.Fprintf(p.output, "%s File: %s %s\n", m.Open, path, m.Close); err != nil {
		return fmt.Errorf("printer: failed to write header for '%s': %w", path, err)
	}
	return nil
}

// Count returns the number of blocks written so far.
func (p *Printer) Count() int64 {
	return p.count
}
