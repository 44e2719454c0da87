// Package jsontext validates and reformats JSON after a tolerant repair pass.
//
// The repair pass fixes a small set of common authoring mistakes (comments,
// trailing commas, single-quoted strings) before the text is handed to the
// standard library's strict parser. When the strict parse still fails, the
// reported line and column refer to the repaired text; repair may shift
// offsets relative to the original file and no mapping back is attempted.
package jsontext

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/yaklabco/docfmt/pkg/diag"
)

// DefaultIndent is the indentation width used when Options.Indent is zero.
const DefaultIndent = 2

// Options controls formatting output.
type Options struct {
	// Indent is the number of spaces per nesting level.
	Indent int
}

func (o Options) indent() int {
	if o.Indent <= 0 {
		return DefaultIndent
	}
	return o.Indent
}

// Validate repairs and strictly parses src. It returns nil when src is valid
// JSON after repair, otherwise a Diagnostic positioned in the repaired text.
func Validate(src []byte) *diag.Diagnostic {
	_, d := Format(src, Options{})
	return d
}

// Format repairs, strictly parses, and pretty-prints src. Object key order
// follows the source; empty objects and arrays collapse to a single line;
// the output ends with one trailing newline.
func Format(src []byte, opts Options) ([]byte, *diag.Diagnostic) {
	if len(bytes.TrimSpace(src)) == 0 {
		d := diag.New(1, 1, "no content to parse")
		return nil, &d
	}

	repaired := []byte(Repair(string(src)))

	dec := json.NewDecoder(bytes.NewReader(repaired))
	dec.UseNumber()

	var buf bytes.Buffer
	p := newPrinter(dec, &buf, opts.indent())

	if err := p.value(0); err != nil {
		d := toDiagnostic(repaired, dec.InputOffset(), err)
		return nil, &d
	}

	// A valid document holds exactly one top-level value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		d := toDiagnostic(repaired, dec.InputOffset(), err)
		return nil, &d
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// toDiagnostic converts a decoder failure into a positioned Diagnostic
// against the repaired text. The decoder's token offsets trail the
// offending byte, so the position comes from a strict re-parse of the whole
// document whenever that re-parse pins down a syntax error. SyntaxError's
// Offset counts the bytes read including the offending one; subtracting one
// puts the caret on the byte itself.
func toDiagnostic(repaired []byte, fallbackOffset int64, err error) diag.Diagnostic {
	var syn *json.SyntaxError

	var v any
	if strict := json.Unmarshal(repaired, &v); errors.As(strict, &syn) {
		return diag.AtOffset(repaired, syn.Offset-1, syn.Error())
	}
	if errors.As(err, &syn) {
		return diag.AtOffset(repaired, syn.Offset-1, syn.Error())
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return diag.AtOffset(repaired, int64(len(repaired)),
			"unexpected end of JSON input")
	}
	return diag.AtOffset(repaired, fallbackOffset, err.Error())
}
