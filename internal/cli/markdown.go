package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/docfmt/pkg/fsutil"
	"github.com/yaklabco/docfmt/pkg/mdnorm"
)

func newValidateMDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-md <path>",
		Short: "Validate pipe tables in a Markdown file",
		Long: `Validate the pipe tables in a Markdown file.

Every detected table's separator and data rows must match the header's
column count. Heading style is not validated; headings are only
rewritten by format-md.`,
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

			return rc.validateMarkdownSource(path, content)
		},
	}
}

func newFormatMDCommand() *cobra.Command {
	var (
		outPath  string
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "format-md <path>",
		Short: "Normalize a Markdown file",
		Long: `Normalize a Markdown file.

Headings get exactly one space after the marker and one blank line on
each side; pipe tables are reflowed to uniform column widths with
alignment markers preserved. Fenced code blocks pass through untouched.
Output goes to standard output unless --out is given.`,
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

			normalized := mdnorm.Normalize(content, mdnorm.Options{
				MinColumnWidth: rc.cfg.TableMinWidth,
			})

			if showDiff {
				return rc.writeDiff(path, content, normalized)
			}
			return rc.writeOutput(path, outPath, normalized)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a unified diff instead of the formatted output")
	cmd.MarkFlagsMutuallyExclusive("out", "diff")

	return cmd
}
