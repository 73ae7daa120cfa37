// Package meta writes directive values into the document metadata map.
package meta

import (
	"log/slog"
	"strings"

	"github.com/geocine/pandoc-jekyll/internal/ast"
	"github.com/geocine/pandoc-jekyll/internal/document"
	"github.com/geocine/pandoc-jekyll/internal/logging"
)

// Injector stores directive values as MetaInlines. Values already present
// in the metadata are never overwritten.
type Injector struct {
	log *slog.Logger
}

// NewInjector creates an injector. A nil logger discards output.
func NewInjector(log *slog.Logger) *Injector {
	if log == nil {
		log = logging.Discard()
	}
	return &Injector{log: log}
}

// Inject stores value under key in meta. It reports whether a value was
// written: an empty value or an existing key leave meta untouched.
//
// An empty key or a meta node that is not an object is a structural error.
func (in *Injector) Inject(meta *ast.Node, key, value string) (bool, error) {
	if key == "" {
		in.log.Error("name for new meta key does not exist")
		return false, &document.StructuralError{Field: document.FieldMeta, Reason: "injection key is empty"}
	}
	if value == "" {
		in.log.Info("no value for meta key, skipping", "key", key)
		return false, nil
	}
	if meta == nil {
		in.log.Error("no meta node in AST")
		return false, &document.StructuralError{Field: document.FieldMeta, Reason: "is missing"}
	}
	if !meta.IsObject() {
		in.log.Error("meta node is not an object", "kind", meta.Kind().String())
		return false, &document.StructuralError{Field: document.FieldMeta, Reason: "is " + meta.Kind().String() + ", not object"}
	}

	if !meta.PutIfAbsent(key, NewMetaInlines(value)) {
		in.log.Debug("meta key already set by document, keeping it", "key", key)
		return false, nil
	}
	in.log.Debug("meta key injected", "key", key, "value", value)
	return true, nil
}

// NewMetaInlines turns a space separated value into Str inlines joined by
// Space inlines. Splitting is on single ASCII spaces, so a run of spaces
// yields empty Str tokens. Trailing empty tokens are dropped.
func NewMetaInlines(value string) *ast.Node {
	tokens := strings.Split(value, " ")
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	inlines := make([]*ast.Node, 0, 2*len(tokens))
	for i, tok := range tokens {
		if i > 0 {
			inlines = append(inlines, ast.NewSpace())
		}
		inlines = append(inlines, ast.NewStr(tok))
	}
	return ast.NewMetaInlines(inlines...)
}
