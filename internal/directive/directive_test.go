package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinOrder(t *testing.T) {
	var names []string
	for _, d := range Builtin() {
		names = append(names, d.Name)
		require.NoError(t, d.Validate())
	}
	assert.Equal(t, []string{"tags", "cover", "summary", "lang"}, names)
}

func TestExtractEachBuiltin(t *testing.T) {
	root := mustParse(t, `{"blocks":[
		{"t":"RawBlock","c":["org","#+LANG: ru"]},
		{"t":"RawBlock","c":["org","#+SUMMARY: A trip north"]},
		{"t":"RawBlock","c":["org","#+COVER: aurora10.jpg"]},
		{"t":"RawBlock","c":["org","#+TAGS: travel photo"]}
	]}`)

	want := map[string]string{
		"tags":    "travel photo",
		"cover":   "aurora10.jpg",
		"summary": "A trip north",
		"lang":    "ru",
	}
	for _, d := range Builtin() {
		v, ok := d.Extract(root)
		require.True(t, ok, d.Name)
		assert.Equal(t, want[d.Name], v, d.Name)
	}

	blocks, _ := root.Get("blocks")
	assert.Equal(t, 0, blocks.Len())
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("cover")
	require.True(t, ok)
	assert.Equal(t, "#+COVER: ", d.Prefix)

	_, ok = Lookup("date")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Directive{Name: "x", Key: "x"}.Validate())
	assert.Error(t, Directive{Name: "x", Prefix: "#+X: ", Key: " "}.Validate())
	assert.NoError(t, Directive{Name: "x", Prefix: "#+X: ", Key: "x"}.Validate())
}

func TestCheckLanguage(t *testing.T) {
	assert.NoError(t, CheckLanguage("ru"))
	assert.NoError(t, CheckLanguage("en-US"))
	assert.Error(t, CheckLanguage("not a language"))
}
