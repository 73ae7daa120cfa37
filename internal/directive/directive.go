package directive

import (
	"fmt"
	"strings"

	"github.com/geocine/pandoc-jekyll/internal/ast"
	"golang.org/x/text/language"
)

// Directive promotes one org keyword line into a metadata key
type Directive struct {
	// Name identifies the directive in configuration and logs
	Name   string
	Prefix string
	Key    string
	// Check optionally inspects an extracted value. A failing check is
	// reported but does not stop the value from being stored.
	Check func(value string) error
}

// Built-in directives, in extraction order
var (
	Tags    = Directive{Name: "tags", Prefix: "#+TAGS: ", Key: "tags"}
	Cover   = Directive{Name: "cover", Prefix: "#+COVER: ", Key: "cover"}
	Summary = Directive{Name: "summary", Prefix: "#+SUMMARY: ", Key: "summary"}
	Lang    = Directive{Name: "lang", Prefix: "#+LANG: ", Key: "lang"}
)

// Builtin returns the built-in directives in the order they are extracted
func Builtin() []Directive {
	return []Directive{Tags, Cover, Summary, Lang}
}

// Lookup returns the built-in directive called name
func Lookup(name string) (Directive, bool) {
	for _, d := range Builtin() {
		if d.Name == name {
			return d, true
		}
	}
	return Directive{}, false
}

// Extract removes the first raw org block carrying this directive and
// returns its value
func (d Directive) Extract(root *ast.Node) (string, bool) {
	if d.Prefix == "" {
		return "", false
	}
	return PopFirstMatch(root, HasPrefix(d.Prefix))
}

// Validate checks the directive can be used for extraction
func (d Directive) Validate() error {
	if d.Prefix == "" {
		return fmt.Errorf("directive %q: empty prefix", d.Name)
	}
	if strings.TrimSpace(d.Key) == "" {
		return fmt.Errorf("directive %q: empty meta key", d.Name)
	}
	return nil
}

// CheckLanguage reports whether value is a well-formed BCP 47 language tag
func CheckLanguage(value string) error {
	if _, err := language.Parse(value); err != nil {
		return fmt.Errorf("%q is not a BCP 47 language tag: %w", value, err)
	}
	return nil
}
