// Package cli provides the Cobra command structure for docfmt.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/docfmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root docfmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "docfmt",
		Short: "Validate and reformat JSON and Markdown files",
		Long: `docfmt validates and reformats JSON and Markdown text files.

JSON input gets a tolerant repair pass (comments, trailing commas,
single-quoted strings) before strict parsing, then pretty-printing with
source key order preserved. Markdown gets normalized heading spacing,
blank lines around headings, and uniformly aligned pipe tables.

Examples:
  docfmt validate-json config.json
  docfmt format-json config.json --out config.json
  docfmt validate-md README.md
  docfmt format-md README.md
  docfmt check notes.txt`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newValidateJSONCommand())
	rootCmd.AddCommand(newFormatJSONCommand())
	rootCmd.AddCommand(newValidateMDCommand())
	rootCmd.AddCommand(newFormatMDCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
