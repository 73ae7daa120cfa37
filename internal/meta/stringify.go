package meta

import (
	"strings"

	"github.com/geocine/pandoc-jekyll/internal/ast"
)

// Stringify flattens inline content to plain text: Str payloads are kept,
// spaces and breaks become a single space, everything else is walked
// through its payload.
func Stringify(n *ast.Node) string {
	var b strings.Builder
	stringify(&b, n)
	return b.String()
}

func stringify(b *strings.Builder, n *ast.Node) {
	switch {
	case n.IsString():
		s, _ := n.Str()
		b.WriteString(s)
	case n.IsArray():
		for _, it := range n.Items() {
			stringify(b, it)
		}
	case n.IsObject():
		typ, _ := n.Type()
		switch typ {
		case ast.TypeSpace, "SoftBreak", "LineBreak":
			b.WriteByte(' ')
			return
		case "Code", "Math", "RawInline":
			// [attr-or-kind, text]: only the text is content
			if c, ok := n.Content(); ok && c.Len() == 2 {
				last, _ := c.Index(1)
				stringify(b, last)
			}
			return
		}
		if c, ok := n.Content(); ok {
			stringify(b, c)
		}
	}
}
