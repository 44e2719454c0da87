package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldOutput = "output"
	FieldKind   = "kind"
	FieldConfig = "config"

	// Diagnostic fields.
	FieldLine    = "line"
	FieldColumn  = "column"
	FieldTables  = "tables"
	FieldPreview = "preview"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
