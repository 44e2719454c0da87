package jsontext

import "strings"

// Repair applies the heuristic pre-parse fixes to raw JSON text:
//
//  1. Strip // line comments and /* */ block comments.
//  2. Convert single-quoted string literals to double-quoted ones.
//  3. Remove trailing commas before a closing ] or }.
//
// Each fix is a single-pass character scanner that tracks string-literal and
// escape state, so content inside string literals is never altered. Repair is
// best-effort: the result is not guaranteed to parse, and when it does not,
// diagnostics are reported against the repaired text, not the original.
func Repair(src string) string {
	out := stripComments(src)
	out = convertSingleQuotes(out)
	return removeTrailingCommas(out)
}

// stripComments removes // and /* */ comments outside string literals.
// Line comments keep their terminating newline; block comments are removed
// entirely, including any newlines they span.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	var inDouble, inSingle, escaped bool
	for i := 0; i < len(src); i++ {
		c := src[i]

		if inDouble || inSingle {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case inDouble && c == '"':
				inDouble = false
			case inSingle && c == '\'':
				inSingle = false
			}
			continue
		}

		switch c {
		case '"':
			inDouble = true
			b.WriteByte(c)
		case '\'':
			inSingle = true
			b.WriteByte(c)
		case '/':
			switch {
			case i+1 < len(src) && src[i+1] == '/':
				for i < len(src) && src[i] != '\n' {
					i++
				}
				if i < len(src) {
					b.WriteByte('\n')
				}
			case i+1 < len(src) && src[i+1] == '*':
				end := strings.Index(src[i+2:], "*/")
				if end < 0 {
					i = len(src)
				} else {
					i += 2 + end + 1
				}
			default:
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// convertSingleQuotes rewrites '...' string literals as "..." literals.
// Interior double quotes are escaped and interior escaped single quotes are
// unescaped. Single quotes inside double-quoted strings are left alone.
// An unterminated single-quoted span is emitted without a synthetic closing
// quote so the strict parse reports it.
func convertSingleQuotes(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	var inDouble, escaped bool
	for i := 0; i < len(src); i++ {
		c := src[i]

		if inDouble {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inDouble = false
			}
			continue
		}

		switch c {
		case '"':
			inDouble = true
			b.WriteByte(c)
		case '\'':
			b.WriteByte('"')
			i++
			closed := false
			for i < len(src) {
				c = src[i]
				if c == '\\' && i+1 < len(src) {
					if src[i+1] == '\'' {
						b.WriteByte('\'')
					} else {
						b.WriteByte('\\')
						b.WriteByte(src[i+1])
					}
					i += 2
					continue
				}
				if c == '\'' {
					closed = true
					break
				}
				if c == '"' {
					b.WriteString(`\"`)
				} else {
					b.WriteByte(c)
				}
				i++
			}
			if closed {
				b.WriteByte('"')
			}
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// removeTrailingCommas deletes commas that, modulo whitespace, immediately
// precede a closing bracket or brace. Runs after convertSingleQuotes so the
// only string literals left are double-quoted.
func removeTrailingCommas(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	var inDouble, escaped bool
	for i := 0; i < len(src); i++ {
		c := src[i]

		if inDouble {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inDouble = false
			}
			continue
		}

		if c == ',' {
			j := i + 1
			for j < len(src) && isJSONSpace(src[j]) {
				j++
			}
			if j < len(src) && (src[j] == ']' || src[j] == '}') {
				continue
			}
		}

		if c == '"' {
			inDouble = true
		}
		b.WriteByte(c)
	}

	return b.String()
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
