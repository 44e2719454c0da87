package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/docfmt/pkg/diag"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 100

// FormatDiagnostic formats a single diagnostic for terminal output:
//
//	path:line:col  error  message
//	        source line
//	        ^
//
// sourceLine may be empty to suppress the context block.
func (s *Styles) FormatDiagnostic(path string, d diag.Diagnostic, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d", s.FilePath.Render(path), d.Line, d.Column)

	builder.WriteString(fmt.Sprintf("%s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(d.Message),
	))

	if sourceLine != "" {
		builder.WriteString(s.formatSourceContext(sourceLine, d.Column))
	}

	return builder.String()
}

// FormatSuccess formats a success line for validate commands.
func (s *Styles) FormatSuccess(path, message string) string {
	return fmt.Sprintf("%s  %s  %s\n",
		s.FilePath.Render(path),
		s.Success.Render("ok"),
		s.Message.Render(message),
	)
}

// formatSourceContext renders the offending source line with a caret under
// the failure column. Long lines are clipped to the terminal width.
func (s *Styles) formatSourceContext(line string, column int) string {
	const indent = "        "

	width := terminalWidth(os.Stderr) - len(indent)
	if width > 0 && len(line) > width {
		line = line[:width]
	}

	var builder strings.Builder
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 && column <= len(line)+1 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// terminalWidth returns the width of the terminal behind w, or defaultWidth
// when w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
