package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocine/pandoc-jekyll/internal/document"
	"github.com/geocine/pandoc-jekyll/internal/testutil"
)

type recordingStage struct {
	name  string
	calls *[]string
	err   error
}

func (s recordingStage) Name() string { return s.name }

func (s recordingStage) Process(*document.Document) error {
	*s.calls = append(*s.calls, s.name)
	return s.err
}

func TestPipelineRunsInOrder(t *testing.T) {
	var calls []string
	p := NewPipeline()
	p.Add(recordingStage{name: "a", calls: &calls})
	p.Add(recordingStage{name: "b", calls: &calls})

	doc := testutil.MustParse(t, `{"pandoc-api-version":[1],"meta":{},"blocks":[]}`)
	require.NoError(t, p.Process(doc))
	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Equal(t, []string{"a", "b"}, p.Stages())
}

func TestPipelineStopsAtFirstError(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	p := NewPipeline()
	p.Add(recordingStage{name: "a", calls: &calls, err: boom})
	p.Add(recordingStage{name: "b", calls: &calls})

	doc := testutil.MustParse(t, `{"pandoc-api-version":[1],"meta":{},"blocks":[]}`)
	err := p.Process(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "stage 'a' failed: boom")
	assert.Equal(t, []string{"a"}, calls)
}
