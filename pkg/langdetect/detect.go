// Package langdetect decides whether a file should be treated as JSON or
// Markdown. It checks the file extension first, then uses go-enry's
// classifier, then falls back to cheap content patterns.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Kind is the detected content kind of a file.
type Kind string

const (
	KindJSON     Kind = "json"
	KindMarkdown Kind = "markdown"
	KindUnknown  Kind = "unknown"
)

// Detect returns the content kind for the file at path with the given
// content. Extension wins over content inspection.
func Detect(path string, content []byte) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc", ".json5":
		return KindJSON
	case ".md", ".markdown", ".mdown":
		return KindMarkdown
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return KindUnknown
	}

	candidates := []string{"JSON", "Markdown"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe {
		switch lang {
		case "JSON":
			return KindJSON
		case "Markdown":
			return KindMarkdown
		}
	}

	return detectByPattern(content)
}

// detectByPattern applies cheap structural heuristics when the classifier is
// not confident.
func detectByPattern(content []byte) Kind {
	trimmed := bytes.TrimSpace(content)

	// JSON documents open with a brace, bracket, quote, or bare literal.
	switch trimmed[0] {
	case '{', '[', '"':
		return KindJSON
	}

	// Markdown markers: ATX headings, pipe tables, list bullets.
	for _, line := range bytes.Split(trimmed, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line[0] == '#' || bytes.HasPrefix(line, []byte("- ")) ||
			bytes.HasPrefix(line, []byte("* ")) || bytes.Contains(line, []byte("|")) {
			return KindMarkdown
		}
	}

	return KindUnknown
}
