package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docfmt/internal/configloader"
	"github.com/yaklabco/docfmt/internal/logging"
	"github.com/yaklabco/docfmt/internal/ui/pretty"
	"github.com/yaklabco/docfmt/pkg/config"
	"github.com/yaklabco/docfmt/pkg/diag"
	"github.com/yaklabco/docfmt/pkg/fsutil"
	"github.com/yaklabco/docfmt/pkg/jsontext"
	"github.com/yaklabco/docfmt/pkg/mdnorm"
	"github.com/yaklabco/docfmt/pkg/textdiff"
)

// runContext bundles the per-invocation plumbing every command needs:
// resolved configuration, output styling, and the command's writers.
type runContext struct {
	cfg    *config.Config
	styles *pretty.Styles
	stdout io.Writer
	stderr io.Writer
}

// newRunContext loads configuration and prepares styled writers. The --color
// flag takes precedence over the config file.
func newRunContext(cmd *cobra.Command) (*runContext, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, err
	}

	cfg := loadResult.Config
	if loadResult.LoadedFrom != "" {
		logger.Debug("configuration loaded", logging.FieldConfig, loadResult.LoadedFrom)
	}

	if cmd.Flags().Changed("color") {
		colorMode, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cfg.Color = config.ColorMode(colorMode)
		if !cfg.Color.IsValid() {
			return nil, fmt.Errorf("invalid color mode %q", colorMode)
		}
	}

	stderr := cmd.ErrOrStderr()
	return &runContext{
		cfg:    cfg,
		styles: pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), stderr)),
		stdout: cmd.OutOrStdout(),
		stderr: stderr,
	}, nil
}

// validateJSONSource validates content as JSON and reports the result.
func (rc *runContext) validateJSONSource(path string, content []byte) error {
	if d := jsontext.Validate(content); d != nil {
		return rc.reportJSONFailure(path, content, *d)
	}

	fmt.Fprint(rc.stdout, rc.styles.FormatSuccess(path, "valid JSON"))
	return nil
}

// reportJSONFailure prints the styled diagnostic against the repaired text.
// When the repair pass changed the source, the repaired text is also logged
// at debug level so the user can see what repair attempted.
func (rc *runContext) reportJSONFailure(path string, content []byte, d diag.Diagnostic) error {
	repaired := jsontext.Repair(string(content))
	fmt.Fprint(rc.stderr, rc.styles.FormatDiagnostic(path, d, lineAt(repaired, d.Line)))

	if repaired != string(content) {
		logging.Default().Debug("repair changed the source but parsing still failed",
			logging.FieldPath, path,
			logging.FieldPreview, repaired,
		)
	}
	return ErrDiagnosticsFound
}

// validateMarkdownSource validates content's tables and reports the result.
func (rc *runContext) validateMarkdownSource(path string, content []byte) error {
	diags := mdnorm.ValidateTables(content)
	if len(diags) > 0 {
		src := string(content)
		for _, d := range diags {
			fmt.Fprint(rc.stderr, rc.styles.FormatDiagnostic(path, d, lineAt(src, d.Line)))
		}
		return ErrDiagnosticsFound
	}

	fmt.Fprint(rc.stdout, rc.styles.FormatSuccess(path, "no table issues found"))
	return nil
}

// writeOutput delivers formatted content to --out or standard output.
func (rc *runContext) writeOutput(inPath, outPath string, content []byte) error {
	if outPath == "" {
		if _, err := rc.stdout.Write(content); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}

	if err := fsutil.WriteAtomic(outPath, content, 0); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logging.Default().Info("formatted output written",
		logging.FieldPath, inPath,
		logging.FieldOutput, outPath,
	)
	return nil
}

// writeDiff prints a unified diff between the source and its formatted
// form. A file already in canonical form produces no output.
func (rc *runContext) writeDiff(path string, before, after []byte) error {
	diff := textdiff.Unified(path, before, after)
	if diff == "" {
		fmt.Fprint(rc.stdout, rc.styles.FormatSuccess(path, "already formatted"))
		return nil
	}
	if _, err := io.WriteString(rc.stdout, diff); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}

// lineAt returns the 1-based nth line of text, or empty when out of range.
func lineAt(text string, n int) string {
	lines := strings.Split(text, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}
