package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docfmt/internal/logging"
	"github.com/yaklabco/docfmt/pkg/fsutil"
	"github.com/yaklabco/docfmt/pkg/langdetect"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Detect a file's content kind and validate it",
		Long: `Detect whether a file is JSON or Markdown and run the matching
validator. The file extension wins; otherwise the content is classified.`,
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

			kind := langdetect.Detect(path, content)
			logging.Default().Debug("content kind detected",
				logging.FieldPath, path,
				logging.FieldKind, string(kind),
			)

			switch kind {
			case langdetect.KindJSON:
				return rc.validateJSONSource(path, content)
			case langdetect.KindMarkdown:
				return rc.validateMarkdownSource(path, content)
			default:
				return fmt.Errorf("cannot determine content kind of %s", path)
			}
		},
	}
}
