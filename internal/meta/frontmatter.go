package meta

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/geocine/pandoc-jekyll/internal/ast"
)

// FrontMatter renders the metadata map as Jekyll YAML front matter,
// delimited by --- lines. When keys is empty every key is written in
// document order; otherwise only the listed keys that exist are.
//
// The "tags" key is written as a list so Jekyll does not have to split it.
func FrontMatter(meta *ast.Node, keys ...string) ([]byte, error) {
	if !meta.IsObject() {
		return nil, fmt.Errorf("meta is %s, not object", meta.Kind())
	}
	if len(keys) == 0 {
		keys = meta.Keys()
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range keys {
		v, ok := meta.Get(key)
		if !ok {
			continue
		}
		var value any = plain(v)
		if key == "tags" {
			if s, isStr := value.(string); isStr {
				value = strings.Fields(s)
			}
		}

		var valueNode yaml.Node
		if err := valueNode.Encode(value); err != nil {
			return nil, fmt.Errorf("failed to encode meta key %q: %w", key, err)
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&valueNode,
		)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	if len(mapping.Content) > 0 {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(mapping); err != nil {
			return nil, fmt.Errorf("failed to encode front matter: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	}
	buf.WriteString("---\n")
	return buf.Bytes(), nil
}

// plain converts a pandoc MetaValue into plain Go values
func plain(v *ast.Node) any {
	typ, _ := v.Type()
	c, _ := v.Content()
	switch typ {
	case "MetaString":
		s, _ := c.Str()
		return s
	case "MetaBool":
		b, _ := c.BoolValue()
		return b
	case ast.TypeMetaInlines, "MetaBlocks":
		return strings.TrimSpace(Stringify(c))
	case "MetaList":
		list := make([]any, 0, c.Len())
		for _, it := range c.Items() {
			list = append(list, plain(it))
		}
		return list
	case "MetaMap":
		m := make(map[string]any, c.Len())
		for _, k := range c.Keys() {
			item, _ := c.Get(k)
			m[k] = plain(item)
		}
		return m
	}
	return Stringify(v)
}
