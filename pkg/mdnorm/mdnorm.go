// Package mdnorm normalizes and validates Markdown documents with a
// line-oriented pass: heading marker spacing, blank lines around headings,
// and pipe-table column alignment. Fenced code blocks pass through untouched.
//
// The pass is a small state machine: scanning, emitting a heading, or
// accumulating a table block until a blank or non-pipe line ends it. End of
// input flushes any pending table.
package mdnorm

import (
	"strings"

	"github.com/yaklabco/docfmt/pkg/diag"
)

// DefaultMinColumnWidth is the floor applied to reflowed column widths when
// Options.MinColumnWidth is zero. Three matches the conventional minimum
// separator width (---).
const DefaultMinColumnWidth = 3

// Options controls normalization output.
type Options struct {
	// MinColumnWidth is the minimum reflowed table column width.
	MinColumnWidth int
}

func (o Options) minColumnWidth() int {
	if o.MinColumnWidth <= 0 {
		return DefaultMinColumnWidth
	}
	return o.MinColumnWidth
}

// fenceTracker tracks fenced code block state across lines.
type fenceTracker struct {
	open bool
	char byte
}

// observe reports whether line is a fence marker and updates the open state.
func (f *fenceTracker) observe(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if len(trimmed) < 3 {
		return false
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return false
	}
	if trimmed[1] != c || trimmed[2] != c {
		return false
	}

	switch {
	case !f.open:
		f.open = true
		f.char = c
	case c == f.char:
		f.open = false
	default:
		// A different fence character inside an open fence is content.
		return false
	}
	return true
}

// Normalize rewrites src with normalized headings and reflowed tables.
// Output lines are joined with \n and end with exactly one trailing newline;
// an empty document stays empty. Tables whose rows disagree on column count
// are emitted unchanged.
func Normalize(src []byte, opts Options) []byte {
	lines := splitLines(src)
	if len(lines) == 0 {
		return nil
	}

	minWidth := opts.minColumnWidth()
	out := make([]string, 0, len(lines))
	var fence fenceTracker

	i := 0
	for i < len(lines) {
		line := lines[i]

		if fence.open {
			fence.observe(line)
			out = append(out, line)
			i++
			continue
		}
		if fence.observe(line) {
			out = append(out, line)
			i++
			continue
		}

		if block, next := takeTableBlock(lines, i); block != nil {
			t := parseTable(block, i+1)
			if t.validate() != nil {
				out = append(out, block...)
			} else {
				out = append(out, t.reflow(minWidth)...)
			}
			i = next
			continue
		}

		if heading, ok := normalizeHeading(line); ok {
			// Exactly one blank line before, unless at document start.
			for len(out) > 0 && out[len(out)-1] == "" {
				out = out[:len(out)-1]
			}
			if len(out) > 0 {
				out = append(out, "")
			}
			out = append(out, heading)

			// Exactly one blank line after, unless at document end.
			j := i + 1
			for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
				j++
			}
			if j < len(lines) {
				out = append(out, "")
			}
			i = j
			continue
		}

		out = append(out, strings.TrimRight(line, " \t\r"))
		i++
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil
	}
	return []byte(strings.Join(out, "\n") + "\n")
}

// ValidateTables scans src for table blocks and returns one Diagnostic per
// malformed table, in document order. Headings are never validation
// failures.
func ValidateTables(src []byte) []diag.Diagnostic {
	lines := splitLines(src)

	var diags []diag.Diagnostic
	var fence fenceTracker

	i := 0
	for i < len(lines) {
		line := lines[i]

		if fence.open {
			fence.observe(line)
			i++
			continue
		}
		if fence.observe(line) {
			i++
			continue
		}

		if block, next := takeTableBlock(lines, i); block != nil {
			if d := parseTable(block, i+1).validate(); d != nil {
				diags = append(diags, *d)
			}
			i = next
			continue
		}

		i++
	}

	return diags
}

// takeTableBlock returns the contiguous table block starting at index i, or
// nil when lines[i] does not open one. A block needs a pipe row followed by
// a separator row, and extends until the first blank or non-pipe line. The
// second return value is the index just past the block.
func takeTableBlock(lines []string, i int) ([]string, int) {
	if !isPipeRow(lines[i]) || i+1 >= len(lines) || !isSeparatorRow(lines[i+1]) {
		return nil, i
	}

	j := i
	for j < len(lines) && isPipeRow(lines[j]) {
		j++
	}
	return lines[i:j], j
}

// splitLines splits src into lines without newline terminators. A trailing
// newline does not produce a final empty line.
func splitLines(src []byte) []string {
	if len(src) == 0 {
		return nil
	}
	lines := strings.Split(string(src), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
