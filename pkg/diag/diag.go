// Package diag defines the Diagnostic type shared by the JSON and Markdown
// pipelines, plus helpers for mapping byte offsets to line/column positions.
package diag

import "fmt"

// Diagnostic describes a single validation or parse failure at a position
// within a source text. Line and Column are 1-based.
type Diagnostic struct {
	// Line is the 1-based line number of the failure.
	Line int

	// Column is the 1-based column number of the failure.
	Column int

	// Message is the human-readable description of the failure.
	Message string
}

// New creates a Diagnostic at the given position.
func New(line, column int, message string) Diagnostic {
	if line < 1 {
		line = 1
	}
	if column < 1 {
		column = 1
	}
	return Diagnostic{Line: line, Column: column, Message: message}
}

// Newf creates a Diagnostic with a formatted message.
func Newf(line, column int, format string, args ...any) Diagnostic {
	return New(line, column, fmt.Sprintf(format, args...))
}

// AtOffset creates a Diagnostic whose position is derived from a byte offset
// into src.
func AtOffset(src []byte, offset int64, message string) Diagnostic {
	line, column := Position(src, offset)
	return Diagnostic{Line: line, Column: column, Message: message}
}

// Error implements the error interface so a Diagnostic can travel through
// error returns.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

// Position maps a byte offset into src to a 1-based line and column.
// Offsets past the end of src report the position just after the final byte.
func Position(src []byte, offset int64) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(src)) {
		offset = int64(len(src))
	}

	line, column = 1, 1
	for _, b := range src[:offset] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
