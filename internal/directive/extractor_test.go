package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocine/pandoc-jekyll/internal/ast"
)

func mustParse(t *testing.T, s string) *ast.Node {
	t.Helper()
	n, err := ast.Parse([]byte(s))
	require.NoError(t, err)
	return n
}

func blockTypes(t *testing.T, root *ast.Node) []string {
	t.Helper()
	blocks, ok := root.Get("blocks")
	require.True(t, ok)
	var out []string
	for _, b := range blocks.Items() {
		typ, _ := b.Type()
		if format, text, ok := ast.RawBlockContent(b); ok {
			typ += ":" + format + ":" + text
		}
		out = append(out, typ)
	}
	return out
}

const sampleDoc = `{
  "pandoc-api-version": [1, 23],
  "meta": {},
  "blocks": [
    {"t": "Para", "c": [{"t": "Str", "c": "before"}]},
    {"t": "RawBlock", "c": ["org", "#+TAGS: test test2"]},
    {"t": "RawBlock", "c": ["org", "#+COVER: aurora10.jpg"]},
    {"t": "RawBlock", "c": ["html", "#+SUMMARY: not org"]},
    {"t": "RawBlock", "c": ["org", "#+TAGS: second"]},
    {"t": "Para", "c": [{"t": "Str", "c": "after"}]}
  ]
}`

func TestPopFirstMatchRemovesOnlyFirst(t *testing.T) {
	root := mustParse(t, sampleDoc)

	tags, ok := PopFirstMatch(root, HasPrefix("#+TAGS: "))
	require.True(t, ok)
	assert.Equal(t, "test test2", tags)

	assert.Equal(t, []string{
		"Para",
		"RawBlock:org:#+COVER: aurora10.jpg",
		"RawBlock:html:#+SUMMARY: not org",
		"RawBlock:org:#+TAGS: second",
		"Para",
	}, blockTypes(t, root))
}

func TestPopFirstMatchSkipsNonOrgFormats(t *testing.T) {
	root := mustParse(t, sampleDoc)

	_, ok := PopFirstMatch(root, HasPrefix("#+SUMMARY: "))
	assert.False(t, ok)
	assert.Len(t, blockTypes(t, root), 6, "nothing removed on a miss")
}

func TestPopFirstMatchAbsentInputs(t *testing.T) {
	_, ok := PopFirstMatch(nil, HasPrefix("#+TAGS: "))
	assert.False(t, ok)

	_, ok = PopFirstMatch(mustParse(t, sampleDoc), nil)
	assert.False(t, ok)

	_, ok = PopFirstMatch(ast.String("#+TAGS: x"), HasPrefix("#+TAGS: "))
	assert.True(t, ok, "a bare string is its own leaf")

	_, ok = PopFirstMatch(mustParse(t, `{"pandoc-api-version":[1],"meta":{},"blocks":null}`), HasPrefix("#+TAGS: "))
	assert.False(t, ok)
}

func TestPopFirstMatchInsideNestedRawBlockPayload(t *testing.T) {
	// a raw block whose payload is an array of raw blocks is searched too
	root := mustParse(t, `{"blocks":[
		{"t":"RawBlock","c":[{"t":"RawBlock","c":["org","#+LANG: ru"]}, {"t":"Null"}]}
	]}`)

	lang, ok := PopFirstMatch(root, HasPrefix("#+LANG: "))
	require.True(t, ok)
	assert.Equal(t, "ru", lang)

	blocks, _ := root.Get("blocks")
	require.Equal(t, 0, blocks.Len(), "each array on the path drops the raw block it owns")
}

func TestPopFirstMatchEmptyValue(t *testing.T) {
	root := mustParse(t, `{"blocks":[{"t":"RawBlock","c":["org","#+COVER: "]}]}`)
	cover, ok := PopFirstMatch(root, HasPrefix("#+COVER: "))
	require.True(t, ok)
	assert.Equal(t, "", cover)
}

func TestListAll(t *testing.T) {
	root := mustParse(t, `{"pandoc-api-version":[1,23],"meta":{},"blocks":[
		{"t":"RawBlock","c":["json","{\"a\":1}"]},
		{"t":"Para","c":[]},
		{"t":"RawBlock","c":["org","#+TAGS: x"]},
		{"t":"RawBlock","c":["json","second"]},
		{"t":"RawBlock","c":["json","x","extra"]},
		{"t":"Div","c":[["",[],[]],[{"t":"RawBlock","c":["json","nested"]}]]}
	]}`)

	payloads := ListAll(root, "json")
	require.Len(t, payloads, 2)

	text, _ := payloads[0].Index(1)
	s, _ := text.Str()
	assert.Equal(t, `{"a":1}`, s)
	text, _ = payloads[1].Index(1)
	s, _ = text.Str()
	assert.Equal(t, "second", s)

	blocks, _ := root.Get("blocks")
	assert.Equal(t, 6, blocks.Len(), "listing never removes")

	// payloads are shared with the tree
	payloads[0].SetIndex(0, ast.String("html"))
	first, _ := blocks.Index(0)
	format, _, _ := ast.RawBlockContent(first)
	assert.Equal(t, "html", format)
}

func TestListAllAbsentInputs(t *testing.T) {
	assert.Empty(t, ListAll(nil, "json"))
	assert.Empty(t, ListAll(mustParse(t, sampleDoc), ""))
	assert.Empty(t, ListAll(ast.String("x"), "json"))
}
