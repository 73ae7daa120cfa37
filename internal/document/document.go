// Package document wraps the root of a pandoc JSON AST and enforces the
// top-level fields every pandoc document carries.
package document

import (
	"errors"
	"fmt"
	"io"

	"github.com/geocine/pandoc-jekyll/internal/ast"
)

// Top-level document fields
const (
	FieldAPIVersion = "pandoc-api-version"
	FieldMeta       = "meta"
	FieldBlocks     = "blocks"
)

// ErrStructural is matched by every structural violation
var ErrStructural = errors.New("not a pandoc-generated AST")

// StructuralError reports a document shape the filter cannot work with.
// It aborts the whole run.
type StructuralError struct {
	Field  string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrStructural, e.Reason)
	}
	return fmt.Sprintf("%s: %q %s", ErrStructural, e.Field, e.Reason)
}

func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

// Document is a pandoc AST owned by a single filter run
type Document struct {
	root *ast.Node
}

// New validates root and wraps it. The three top-level fields must be
// present and non-null.
func New(root *ast.Node) (*Document, error) {
	if !root.IsObject() {
		return nil, &StructuralError{Field: "", Reason: "root is " + root.Kind().String() + ", not object"}
	}
	for _, field := range []string{FieldAPIVersion, FieldMeta, FieldBlocks} {
		if !root.HasNonNull(field) {
			return nil, &StructuralError{Field: field, Reason: "is missing"}
		}
	}
	return &Document{root: root}, nil
}

// Read decodes and validates a document from r
func Read(r io.Reader) (*Document, error) {
	root, err := ast.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return New(root)
}

// Parse decodes and validates a document held in memory
func Parse(data []byte) (*Document, error) {
	root, err := ast.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return New(root)
}

// Root returns the document object. Mutations through it are visible to
// the document.
func (d *Document) Root() *ast.Node {
	return d.root
}

// APIVersion returns the pandoc-api-version value
func (d *Document) APIVersion() *ast.Node {
	v, _ := d.root.Get(FieldAPIVersion)
	return v
}

// Meta returns the metadata node. It may not be an object; callers that
// write to it must check.
func (d *Document) Meta() *ast.Node {
	v, _ := d.root.Get(FieldMeta)
	return v
}

// Blocks returns the top-level block list
func (d *Document) Blocks() *ast.Node {
	v, _ := d.root.Get(FieldBlocks)
	return v
}

// Clone returns an independent deep copy
func (d *Document) Clone() *Document {
	return &Document{root: d.root.Clone()}
}

// Write encodes the document to w
func (d *Document) Write(w io.Writer) error {
	if err := d.root.Encode(w); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
