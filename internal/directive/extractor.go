// Package directive finds org-mode directive lines that pandoc leaves behind
// as raw blocks, and removes them from the document as they are found.
package directive

import (
	"strings"

	"github.com/geocine/pandoc-jekyll/internal/ast"
	"github.com/geocine/pandoc-jekyll/internal/document"
)

// FormatOrg is the raw block format pandoc uses for unknown org lines
const FormatOrg = "org"

// Match inspects a leaf candidate and returns the extracted text on a hit
type Match func(n *ast.Node) (string, bool)

// HasPrefix matches string nodes starting with prefix and returns the text
// after it.
func HasPrefix(prefix string) Match {
	return func(n *ast.Node) (string, bool) {
		s, ok := n.Str()
		if !ok || !strings.HasPrefix(s, prefix) {
			return "", false
		}
		return s[len(prefix):], true
	}
}

// PopFirstMatch walks the tree depth-first, left to right, looking for the
// first org raw block whose text satisfies match. That block is removed from
// the array that holds it and the matched text is returned.
func PopFirstMatch(root *ast.Node, match Match) (string, bool) {
	if root == nil || match == nil {
		return "", false
	}
	return popFirst(root, match)
}

func popFirst(node *ast.Node, match Match) (string, bool) {
	// document root
	if node.IsObject() && node.HasNonNull(document.FieldBlocks) {
		blocks, _ := node.Get(document.FieldBlocks)
		return popFirst(blocks, match)
	}

	// block list: only raw blocks are candidates, and removal happens here,
	// in the frame that owns the matched child
	if node.IsArray() {
		for i := 0; i < node.Len(); i++ {
			el, _ := node.Index(i)
			if !ast.IsType(el, ast.TypeRawBlock) {
				continue
			}
			if text, ok := popFirst(el, match); ok {
				node.RemoveIndex(i)
				return text, true
			}
		}
	}

	// raw block: unwrap its payload
	if node.IsObject() {
		if c, ok := node.Content(); ok && c.IsArray() {
			return popFirst(c, match)
		}
	}

	// payload ["org", text]; other formats fall through to match and miss
	if node.IsArray() && node.Len() > 1 {
		format, _ := node.Index(0)
		text, _ := node.Index(1)
		if f, ok := format.Str(); ok && f == FormatOrg && text.IsString() {
			return popFirst(text, match)
		}
	}

	return match(node)
}

// ListAll returns the payload arrays of every top-level raw block whose
// format equals format, in document order. Nothing is removed; the returned
// arrays are shared with the tree so callers can rewrite them in place.
func ListAll(root *ast.Node, format string) []*ast.Node {
	if root == nil || format == "" {
		return nil
	}
	if root.IsObject() && root.HasNonNull(document.FieldBlocks) {
		blocks, _ := root.Get(document.FieldBlocks)
		return ListAll(blocks, format)
	}
	if !root.IsArray() {
		return nil
	}

	var result []*ast.Node
	for _, el := range root.Items() {
		if !ast.IsType(el, ast.TypeRawBlock) {
			continue
		}
		c, ok := el.Content()
		if !ok || !c.IsArray() || c.Len() != 2 {
			continue
		}
		f, _ := c.Index(0)
		if s, ok := f.Str(); ok && s == format {
			result = append(result, c)
		}
	}
	return result
}
