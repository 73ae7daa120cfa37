package filter

import (
	"fmt"

	"github.com/geocine/pandoc-jekyll/internal/document"
)

// Stage is one pass over a document. Stages mutate the document in place.
type Stage interface {
	Name() string
	Process(doc *document.Document) error
}

// Pipeline runs stages in sequence. Later stages see the removals made by
// earlier ones, so order matters.
type Pipeline struct {
	stages []Stage
}

// NewPipeline creates an empty pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		stages: make([]Stage, 0),
	}
}

// Add appends a stage to the pipeline
func (p *Pipeline) Add(stage Stage) {
	p.stages = append(p.stages, stage)
}

// Stages returns the stage names in run order
func (p *Pipeline) Stages() []string {
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.Name())
	}
	return names
}

// Process runs every stage on doc and stops at the first error
func (p *Pipeline) Process(doc *document.Document) error {
	for _, stage := range p.stages {
		if err := stage.Process(doc); err != nil {
			return fmt.Errorf("stage '%s' failed: %w", stage.Name(), err)
		}
	}
	return nil
}
