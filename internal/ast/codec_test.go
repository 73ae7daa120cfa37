package ast

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesKeyOrderAndNumbers(t *testing.T) {
	in := `{"pandoc-api-version":[1,23,1.5],"meta":{},"blocks":[{"t":"Para","c":[{"t":"Str","c":"Бытует"}]}]}`

	n, err := Parse([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"pandoc-api-version", "meta", "blocks"}, n.Keys())

	out, err := n.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	n := NewRawBlock("html", `<div class="a">&</div>`)
	out, err := n.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"t":"RawBlock","c":["html","<div class=\"a\">&</div>"]}`, string(out))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"truncated", `{"a":[1,2`},
		{"trailing", `{} {}`},
		{"bad literal", `{"a":tru}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestNodeInsideStdlibStruct(t *testing.T) {
	var wrapper struct {
		Doc *Node `json:"doc"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"doc":{"t":"Space"}}`), &wrapper))
	assert.True(t, IsType(wrapper.Doc, TypeSpace))

	out, err := json.Marshal(wrapper)
	require.NoError(t, err)
	assert.JSONEq(t, `{"doc":{"t":"Space"}}`, string(out))
}

func TestEncodeAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Array(Null(), Bool(false)).Encode(&buf))
	assert.Equal(t, "[null,false]\n", buf.String())
}

func TestIndent(t *testing.T) {
	out, err := NewSpace().Indent("", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"t\": \"Space\"\n}", string(out))
}
