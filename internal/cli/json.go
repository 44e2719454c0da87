package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/docfmt/pkg/fsutil"
	"github.com/yaklabco/docfmt/pkg/jsontext"
)

func newValidateJSONCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-json <path>",
		Short: "Validate a JSON file after tolerant repair",
		Long: `Validate a JSON file.

The file gets a tolerant repair pass first: comments are stripped,
trailing commas removed, and single-quoted strings converted. When the
repaired text still fails strict parsing, the diagnostic's line and
column refer to the repaired text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := newRunContext(cmd)
			if err != nil {
				return err
			}

			path := args[0]
			content, err := fsutil.ReadSource(path)
			if err != nil {
				return err
			}

			return rc.validateJSONSource(path, content)
		},
	}
}

func newFormatJSONCommand() *cobra.Command {
	var (
		outPath  string
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "format-json <path>",
		Short: "Repair and pretty-print a JSON file",
		Long: `Repair and pretty-print a JSON file.

Output preserves the source's object key order, indents with a fixed
unit per nesting level, and collapses empty objects and arrays to a
single line. Output goes to standard output unless --out is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := newRunContext(cmd)
			if err != nil {
				return err
			}

			path := args[0]
			content, err := fsutil.ReadSource(path)
			if err != nil {
				return err
			}

			formatted, d := jsontext.Format(content, jsontext.Options{
				Indent: rc.cfg.JSONIndent,
			})
			if d != nil {
				return rc.reportJSONFailure(path, content, *d)
			}

			if showDiff {
				return rc.writeDiff(path, content, formatted)
			}
			return rc.writeOutput(path, outPath, formatted)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a unified diff instead of the formatted output")
	cmd.MarkFlagsMutuallyExclusive("out", "diff")

	return cmd
}
