package cli

import "errors"

// Exit codes for docfmt.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitDiagnostics indicates a validation or parse failure.
	ExitDiagnostics = 1

	// ExitUsage indicates invalid usage: bad flags, a missing or unreadable
	// input file, or a failed output write.
	ExitUsage = 2
)

// ErrDiagnosticsFound is returned by commands after diagnostics have been
// printed. It carries the exit code decision out of cobra's RunE without
// triggering duplicate error output.
var ErrDiagnosticsFound = errors.New("diagnostics found")

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrDiagnosticsFound):
		return ExitDiagnostics
	default:
		return ExitUsage
	}
}
