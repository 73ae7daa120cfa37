// Package filter runs the directive and gallery stages over a pandoc
// document.
package filter

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/geocine/pandoc-jekyll/internal/config"
	"github.com/geocine/pandoc-jekyll/internal/directive"
	"github.com/geocine/pandoc-jekyll/internal/document"
	"github.com/geocine/pandoc-jekyll/internal/gallery"
	"github.com/geocine/pandoc-jekyll/internal/logging"
	"github.com/geocine/pandoc-jekyll/internal/meta"
)

// Filter is a configured pipeline. A Filter may be reused, but not from
// several goroutines at once.
type Filter struct {
	pipeline *Pipeline
	recorder *logging.Recorder
	keys     []string
}

// Result is the outcome of a successful run
type Result struct {
	Document *document.Document
	// Warnings holds every non-fatal problem logged during the run
	Warnings []logging.Entry
}

// New builds a filter from cfg. Log output goes to log; warnings are also
// collected into each Result.
func New(cfg *config.Config, log *slog.Logger) (*Filter, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if log == nil {
		log = logging.Discard()
	}

	recorder := logging.NewRecorder(log.Handler())
	log = slog.New(recorder)
	injector := meta.NewInjector(log)

	f := &Filter{pipeline: NewPipeline(), recorder: recorder}

	directives := make([]directive.Directive, 0, len(directive.Builtin())+len(cfg.Directives.Extra))
	for _, d := range directive.Builtin() {
		if cfg.IsDisabled(d.Name) {
			log.Debug("directive disabled", "directive", d.Name)
			continue
		}
		if d.Name == directive.Lang.Name && cfg.Lang.Validate {
			d.Check = directive.CheckLanguage
		}
		directives = append(directives, d)
	}
	for _, extra := range cfg.Directives.Extra {
		directives = append(directives, directive.Directive{Name: extra.Key, Prefix: extra.Prefix, Key: extra.Key})
	}

	for _, d := range directives {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		f.pipeline.Add(NewDirectiveStage(d, injector, log))
		f.keys = append(f.keys, d.Key)
	}

	opts := []gallery.Option{
		gallery.WithCaptions(cfg.Gallery.CaptionMarkdown),
		gallery.WithStrictItems(cfg.Gallery.StrictItems),
		gallery.WithLogger(log),
	}
	if cfg.Gallery.Template != "" {
		opts = append(opts, gallery.WithTemplateFile(cfg.Gallery.Template))
	}
	renderer, err := gallery.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery renderer: %w", err)
	}
	f.pipeline.Add(NewGalleryStage(renderer, log))

	return f, nil
}

// Stages returns the stage names in run order
func (f *Filter) Stages() []string {
	return f.pipeline.Stages()
}

// Keys returns the metadata keys the filter may add, in extraction order
func (f *Filter) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Apply runs the pipeline on doc in place. On error the document may be
// partially modified and should be discarded.
func (f *Filter) Apply(doc *document.Document) (*Result, error) {
	f.recorder.Take()
	err := f.pipeline.Process(doc)
	warnings := f.recorder.Take()
	if err != nil {
		return nil, err
	}
	return &Result{Document: doc, Warnings: warnings}, nil
}

// Run reads a document from r, filters it and writes it to w. Nothing is
// written to w unless the whole run succeeds.
func (f *Filter) Run(r io.Reader, w io.Writer) (*Result, error) {
	doc, err := document.Read(r)
	if err != nil {
		return nil, err
	}

	res, err := f.Apply(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := res.Document.Write(&buf); err != nil {
		return nil, err
	}
	if _, err := io.Copy(w, &buf); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	return res, nil
}
