package cli

import (
	"github.com/spf13/cobra"

	"github.com/geocine/pandoc-jekyll/internal/document"
	"github.com/geocine/pandoc-jekyll/internal/meta"
)

// NewCmdFrontMatter creates the frontmatter command
func NewCmdFrontMatter() *cobra.Command {
	var keys []string
	var all bool

	cmd := &cobra.Command{
		Use:   "frontmatter",
		Short: "Print the promoted metadata as Jekyll front matter",
		Long: `Runs the filter on the pandoc JSON AST read from stdin and prints the
resulting metadata as YAML front matter instead of the document.

By default only the keys the filter manages are printed.`,
		Example: `  pandoc post.org -t json | pandoc-jekyll frontmatter
  pandoc post.org -t json | pandoc-jekyll frontmatter --key tags --key lang
  pandoc post.org -t json | pandoc-jekyll frontmatter --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _, err := newFilter(cmd)
			if err != nil {
				return err
			}

			doc, err := document.Read(cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := f.Apply(doc)
			if err != nil {
				return err
			}

			selected := keys
			if all {
				selected = nil
			} else if len(selected) == 0 {
				selected = f.Keys()
			}
			out, err := meta.FrontMatter(res.Document.Meta(), selected...)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&keys, "key", "k", nil, "metadata key to print (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "print every metadata key")
	cmd.MarkFlagsMutuallyExclusive("key", "all")

	return cmd
}
