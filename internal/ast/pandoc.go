package ast

// Conventional field names and node types of the pandoc JSON AST
const (
	FieldType    = "t"
	FieldContent = "c"

	TypeRawBlock    = "RawBlock"
	TypeMetaInlines = "MetaInlines"
	TypeStr         = "Str"
	TypeSpace       = "Space"
)

// Type returns the discriminator of a pandoc object node
func (n *Node) Type() (string, bool) {
	t, ok := n.Get(FieldType)
	if !ok {
		return "", false
	}
	return t.Str()
}

// IsType reports whether n is an object whose discriminator equals typ
func IsType(n *Node, typ string) bool {
	t, ok := n.Type()
	return ok && t == typ
}

// Content returns the payload field of a pandoc object node
func (n *Node) Content() (*Node, bool) {
	return n.Get(FieldContent)
}

// NewStr builds a Str inline
func NewStr(s string) *Node {
	return Object(
		Field{FieldType, String(TypeStr)},
		Field{FieldContent, String(s)},
	)
}

// NewSpace builds a Space inline
func NewSpace() *Node {
	return Object(Field{FieldType, String(TypeSpace)})
}

// NewMetaInlines builds a MetaInlines value holding the given inlines
func NewMetaInlines(inlines ...*Node) *Node {
	return Object(
		Field{FieldType, String(TypeMetaInlines)},
		Field{FieldContent, Array(inlines...)},
	)
}

// NewRawBlock builds a RawBlock with the given format and text
func NewRawBlock(format, text string) *Node {
	return Object(
		Field{FieldType, String(TypeRawBlock)},
		Field{FieldContent, Array(String(format), String(text))},
	)
}

// RawBlockContent returns the format and text of a RawBlock node whose
// payload is the usual two-string array.
func RawBlockContent(n *Node) (format, text string, ok bool) {
	if !IsType(n, TypeRawBlock) {
		return "", "", false
	}
	c, ok := n.Content()
	if !ok || c.Len() != 2 {
		return "", "", false
	}
	f, _ := c.Index(0)
	t, _ := c.Index(1)
	format, fok := f.Str()
	text, tok := t.Str()
	if !fok || !tok {
		return "", "", false
	}
	return format, text, true
}
