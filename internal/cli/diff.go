package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/geocine/pandoc-jekyll/internal/document"
)

// NewCmdDiff creates the diff command
func NewCmdDiff() *cobra.Command {
	var text bool

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show what the filter changes in a document",
		Long: `Runs the filter on the pandoc JSON AST read from stdin and prints the
difference between input and output.

The default output is a JSON merge patch (RFC 7386). With --text a line
diff of the indented documents is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _, err := newFilter(cmd)
			if err != nil {
				return err
			}

			input, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			doc, err := document.Parse(input)
			if err != nil {
				return err
			}
			before := doc.Clone()

			res, err := f.Apply(doc)
			if err != nil {
				return err
			}

			if text {
				return writeTextDiff(cmd.OutOrStdout(), before, res.Document)
			}
			return writeMergePatch(cmd.OutOrStdout(), before, res.Document)
		},
	}

	cmd.Flags().BoolVar(&text, "text", false, "print a line diff instead of a merge patch")

	return cmd
}

func writeMergePatch(w io.Writer, before, after *document.Document) error {
	var a, b bytes.Buffer
	if err := before.Write(&a); err != nil {
		return err
	}
	if err := after.Write(&b); err != nil {
		return err
	}
	patch, err := jsonpatch.CreateMergePatch(a.Bytes(), b.Bytes())
	if err != nil {
		return fmt.Errorf("failed to create merge patch: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", patch)
	return err
}

func writeTextDiff(w io.Writer, before, after *document.Document) error {
	a, err := before.Root().Indent("", "  ")
	if err != nil {
		return err
	}
	b, err := after.Root().Indent("", "  ")
	if err != nil {
		return err
	}

	dmp := diffmatchpatch.New()
	charsA, charsB, lines := dmp.DiffLinesToChars(string(a), string(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(charsA, charsB, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffEqual:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteString("\n")
			}
		}
	}
	_, err = io.WriteString(w, out.String())
	return err
}
