// Package ast models the pandoc JSON AST as a generic tree of nodes.
//
// A Node is a tagged union of the JSON shapes: null, bool, number, string,
// array and object. Accessors never panic on the wrong shape; they report
// absence through a boolean and leave the decision to the caller.
package ast

import (
	"encoding/json"
)

// Kind identifies the shape of a Node
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Node is a single value of the document tree
type Node struct {
	kind   Kind
	b      bool
	num    json.Number
	str    string
	items  []*Node
	keys   []string // object keys in insertion order
	fields map[string]*Node
}

// Field is a key/value pair used to build objects
type Field struct {
	Key   string
	Value *Node
}

// Null returns a null node
func Null() *Node { return &Node{kind: KindNull} }

// Bool returns a boolean node
func Bool(b bool) *Node { return &Node{kind: KindBool, b: b} }

// Number returns a numeric node holding the literal as written
func Number(n json.Number) *Node { return &Node{kind: KindNumber, num: n} }

// String returns a string node
func String(s string) *Node { return &Node{kind: KindString, str: s} }

// Array returns an array node holding items
func Array(items ...*Node) *Node {
	n := &Node{kind: KindArray, items: make([]*Node, 0, len(items))}
	for _, it := range items {
		n.items = append(n.items, orNull(it))
	}
	return n
}

// Object returns an object node holding fields in the given order
func Object(fields ...Field) *Node {
	n := &Node{kind: KindObject, fields: make(map[string]*Node, len(fields))}
	for _, f := range fields {
		n.Put(f.Key, f.Value)
	}
	return n
}

func orNull(n *Node) *Node {
	if n == nil {
		return Null()
	}
	return n
}

// Kind returns the shape of the node. A nil node reports KindNull.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

func (n *Node) IsNull() bool   { return n.Kind() == KindNull }
func (n *Node) IsObject() bool { return n.Kind() == KindObject }
func (n *Node) IsArray() bool  { return n.Kind() == KindArray }
func (n *Node) IsString() bool { return n.Kind() == KindString }

// Str returns the string payload of a string node
func (n *Node) Str() (string, bool) {
	if !n.IsString() {
		return "", false
	}
	return n.str, true
}

// BoolValue returns the payload of a boolean node
func (n *Node) BoolValue() (bool, bool) {
	if n.Kind() != KindBool {
		return false, false
	}
	return n.b, true
}

// NumberValue returns the literal of a numeric node
func (n *Node) NumberValue() (json.Number, bool) {
	if n.Kind() != KindNumber {
		return "", false
	}
	return n.num, true
}

// Len returns the number of array items or object fields
func (n *Node) Len() int {
	switch n.Kind() {
	case KindArray:
		return len(n.items)
	case KindObject:
		return len(n.keys)
	}
	return 0
}

// Index returns the array item at i
func (n *Node) Index(i int) (*Node, bool) {
	if !n.IsArray() || i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// SetIndex replaces the array item at i. It reports false when i is out of
// range or n is not an array.
func (n *Node) SetIndex(i int, v *Node) bool {
	if !n.IsArray() || i < 0 || i >= len(n.items) {
		return false
	}
	n.items[i] = orNull(v)
	return true
}

// RemoveIndex deletes the array item at i, shifting later items left
func (n *Node) RemoveIndex(i int) bool {
	if !n.IsArray() || i < 0 || i >= len(n.items) {
		return false
	}
	copy(n.items[i:], n.items[i+1:])
	n.items[len(n.items)-1] = nil
	n.items = n.items[:len(n.items)-1]
	return true
}

// Items returns the array items. The slice is shared with the node.
func (n *Node) Items() []*Node {
	if !n.IsArray() {
		return nil
	}
	return n.items
}

// Get returns the object field named key
func (n *Node) Get(key string) (*Node, bool) {
	if !n.IsObject() {
		return nil, false
	}
	v, ok := n.fields[key]
	return v, ok
}

// Has reports whether the object carries key
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// HasNonNull reports whether the object carries key with a non-null value
func (n *Node) HasNonNull(key string) bool {
	v, ok := n.Get(key)
	return ok && !v.IsNull()
}

// Put sets key on an object node, keeping the original position when the
// key already exists.
func (n *Node) Put(key string, v *Node) bool {
	if !n.IsObject() {
		return false
	}
	if _, ok := n.fields[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = orNull(v)
	return true
}

// PutIfAbsent sets key only when the object does not carry it yet.
// It reports whether the value was stored.
func (n *Node) PutIfAbsent(key string, v *Node) bool {
	if !n.IsObject() || n.Has(key) {
		return false
	}
	return n.Put(key, v)
}

// Delete removes key from an object node
func (n *Node) Delete(key string) bool {
	if !n.IsObject() || !n.Has(key) {
		return false
	}
	delete(n.fields, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns object keys in insertion order
func (n *Node) Keys() []string {
	if !n.IsObject() {
		return nil
	}
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Equal reports structural equality. Object key order is not significant.
func (n *Node) Equal(o *Node) bool {
	if n.Kind() != o.Kind() {
		return false
	}
	switch n.Kind() {
	case KindNull:
		return true
	case KindBool:
		return n.b == o.b
	case KindNumber:
		return n.num == o.num
	case KindString:
		return n.str == o.str
	case KindArray:
		if len(n.items) != len(o.items) {
			return false
		}
		for i := range n.items {
			if !n.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(n.keys) != len(o.keys) {
			return false
		}
		for _, k := range n.keys {
			ov, ok := o.fields[k]
			if !ok || !n.fields[k].Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of the node
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{kind: n.kind, b: n.b, num: n.num, str: n.str}
	switch n.kind {
	case KindArray:
		c.items = make([]*Node, len(n.items))
		for i, it := range n.items {
			c.items[i] = it.Clone()
		}
	case KindObject:
		c.keys = make([]string, len(n.keys))
		copy(c.keys, n.keys)
		c.fields = make(map[string]*Node, len(n.fields))
		for k, v := range n.fields {
			c.fields[k] = v.Clone()
		}
	}
	return c
}
