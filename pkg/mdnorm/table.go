package mdnorm

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/docfmt/pkg/diag"
)

// alignment captures the colon markers of one separator cell.
type alignment struct {
	left  bool
	right bool
}

// table is a detected pipe-delimited block: a header row, a separator row,
// and zero or more data rows.
type table struct {
	// startLine is the 1-based line number of the header row.
	startLine int

	header []string
	aligns []alignment
	rows   [][]string

	// raw holds the original lines so malformed tables can be emitted
	// unchanged by format mode.
	raw []string
}

// isPipeRow reports whether a line can belong to a table block: non-blank
// and containing at least one pipe.
func isPipeRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && strings.Contains(trimmed, "|")
}

// isSeparatorRow reports whether a line is a table separator row: every cell
// is a run of dashes optionally wrapped in alignment colons.
func isSeparatorRow(line string) bool {
	if !isPipeRow(line) {
		return false
	}
	cells := splitCells(line)
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if !isAlignmentCell(cell) {
			return false
		}
	}
	return true
}

// isAlignmentCell reports whether a trimmed cell matches :?-+:?.
func isAlignmentCell(cell string) bool {
	s := strings.TrimPrefix(cell, ":")
	s = strings.TrimSuffix(s, ":")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			return false
		}
	}
	return true
}

// splitCells splits a row into trimmed cells. Leading and trailing pipes are
// optional and normalized away before splitting.
func splitCells(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")

	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}

// parseAlignments extracts colon markers from separator cells.
func parseAlignments(cells []string) []alignment {
	aligns := make([]alignment, len(cells))
	for i, cell := range cells {
		aligns[i] = alignment{
			left:  strings.HasPrefix(cell, ":"),
			right: strings.HasSuffix(cell, ":"),
		}
	}
	return aligns
}

// parseTable builds a table from a contiguous block of pipe rows.
// startLine is the 1-based line number of block[0].
func parseTable(block []string, startLine int) *table {
	t := &table{
		startLine: startLine,
		header:    splitCells(block[0]),
		aligns:    parseAlignments(splitCells(block[1])),
		raw:       block,
	}
	for _, line := range block[2:] {
		t.rows = append(t.rows, splitCells(line))
	}
	return t
}

// validate checks the separator and every data row against the header's
// column count. The first mismatch, in line order, wins.
func (t *table) validate() *diag.Diagnostic {
	want := len(t.header)

	if len(t.aligns) != want {
		d := diag.Newf(t.startLine+1, 1,
			"table separator has %d columns; header has %d", len(t.aligns), want)
		return &d
	}

	for i, row := range t.rows {
		if len(row) != want {
			d := diag.Newf(t.startLine+2+i, 1,
				"table row has %d columns; header has %d", len(row), want)
			return &d
		}
	}

	return nil
}

// reflow rewrites the table with uniform column widths. Each column's width
// is the maximum trimmed cell width across header and data rows, floored at
// minWidth. Alignment markers survive into the rewritten separator.
func (t *table) reflow(minWidth int) []string {
	widths := make([]int, len(t.header))
	for i, cell := range t.header {
		widths[i] = utf8.RuneCountInString(cell)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < minWidth {
			widths[i] = minWidth
		}
	}

	out := make([]string, 0, len(t.rows)+2)
	out = append(out, renderRow(t.header, widths))
	out = append(out, renderSeparator(t.aligns, widths))
	for _, row := range t.rows {
		out = append(out, renderRow(row, widths))
	}
	return out
}

func renderRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = padCell(cell, widths[i])
	}
	return "| " + strings.Join(padded, " | ") + " |"
}

func renderSeparator(aligns []alignment, widths []int) string {
	cells := make([]string, len(aligns))
	for i, a := range aligns {
		dashes := widths[i]
		if a.left {
			dashes--
		}
		if a.right {
			dashes--
		}
		if dashes < 1 {
			dashes = 1
		}

		var b strings.Builder
		if a.left {
			b.WriteByte(':')
		}
		b.WriteString(strings.Repeat("-", dashes))
		if a.right {
			b.WriteByte(':')
		}
		cells[i] = b.String()
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

func padCell(cell string, width int) string {
	gap := width - utf8.RuneCountInString(cell)
	if gap <= 0 {
		return cell
	}
	return cell + strings.Repeat(" ", gap)
}
