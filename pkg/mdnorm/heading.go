package mdnorm

import "strings"

// maxHeadingLevel is the deepest ATX heading level.
const maxHeadingLevel = 6

// normalizeHeading rewrites an ATX heading line with exactly one space
// between the marker and the title, trailing whitespace trimmed. The second
// return value is false when the line is not a heading (no leading #, or
// more than six # characters).
func normalizeHeading(line string) (string, bool) {
	trimmed := strings.TrimRight(line, " \t\r")

	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return "", false
	}

	title := strings.TrimSpace(trimmed[level:])
	marker := trimmed[:level]
	if title == "" {
		return marker, true
	}
	return marker + " " + title, true
}
