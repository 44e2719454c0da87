// Package textdiff renders unified diffs between two versions of a
// document. It backs the --diff preview on the format commands, so the
// output sticks to the plain unified format that patch tools and code
// review UIs understand.
package textdiff

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

type lineKind int

const (
	kindContext lineKind = iota
	kindAdd
	kindRemove
)

type op struct {
	kind lineKind
	text string
}

type hunk struct {
	beforeStart, beforeCount int
	afterStart, afterCount   int
	ops                      []op
}

// Unified returns a unified diff between before and after, with path used
// in the ---/+++ header lines. It returns the empty string when the two
// inputs are line-for-line identical.
func Unified(path string, before, after []byte) string {
	beforeLines := splitLines(before)
	afterLines := splitLines(after)

	ops := diffOps(beforeLines, afterLines)
	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return ""
	}

	header := strings.TrimPrefix(path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", header)
	fmt.Fprintf(&b, "+++ b/%s\n", header)
	for _, h := range hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			h.beforeStart, h.beforeCount, h.afterStart, h.afterCount)
		for _, o := range h.ops {
			switch o.kind {
			case kindContext:
				b.WriteByte(' ')
			case kindAdd:
				b.WriteByte('+')
			case kindRemove:
				b.WriteByte('-')
			}
			b.WriteString(o.text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOps flattens before and after into a single op stream ordered the
// way a unified diff presents it: removals before additions within each
// changed region, context lines where both sides agree with the LCS.
func diffOps(before, after []string) []op {
	lcs := longestCommonSubsequence(before, after)

	var ops []op
	bi, ai, li := 0, 0, 0
	for bi < len(before) || ai < len(after) {
		if li < len(lcs) && bi < len(before) && ai < len(after) &&
			before[bi] == lcs[li] && after[ai] == lcs[li] {
			ops = append(ops, op{kindContext, before[bi]})
			bi++
			ai++
			li++
			continue
		}
		for bi < len(before) && (li >= len(lcs) || before[bi] != lcs[li]) {
			ops = append(ops, op{kindRemove, before[bi]})
			bi++
		}
		for ai < len(after) && (li >= len(lcs) || after[ai] != lcs[li]) {
			ops = append(ops, op{kindAdd, after[ai]})
			ai++
		}
	}
	return ops
}

// groupHunks slices the op stream into hunks, folding changes whose
// context windows touch into a single hunk.
func groupHunks(ops []op) []hunk {
	type span struct{ start, end int }

	var changes []span
	open := false
	start := 0
	for i, o := range ops {
		changed := o.kind != kindContext
		if changed && !open {
			start, open = i, true
		} else if !changed && open {
			changes = append(changes, span{start, i})
			open = false
		}
	}
	if open {
		changes = append(changes, span{start, len(ops)})
	}
	if len(changes) == 0 {
		return nil
	}

	var hunks []hunk
	for i := 0; i < len(changes); {
		j := i + 1
		for j < len(changes) && changes[j].start-changes[j-1].end <= contextLines*2 {
			j++
		}
		hunks = append(hunks, buildHunk(ops, changes[i].start, changes[j-1].end))
		i = j
	}
	return hunks
}

func buildHunk(ops []op, changeStart, changeEnd int) hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	h := hunk{beforeStart: 1, afterStart: 1}
	for i := range start {
		if ops[i].kind != kindAdd {
			h.beforeStart++
		}
		if ops[i].kind != kindRemove {
			h.afterStart++
		}
	}
	for i := start; i < end; i++ {
		h.ops = append(h.ops, ops[i])
		switch ops[i].kind {
		case kindContext:
			h.beforeCount++
			h.afterCount++
		case kindRemove:
			h.beforeCount++
		case kindAdd:
			h.afterCount++
		}
	}
	return h
}

func longestCommonSubsequence(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	n := dp[len(a)][len(b)]
	if n == 0 {
		return nil
	}
	out := make([]string, n)
	i, j, k := len(a), len(b), n-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out[k] = a[i-1]
			i--
			j--
			k--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return out
}
