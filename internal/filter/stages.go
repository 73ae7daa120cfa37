package filter

import (
	"log/slog"

	"github.com/geocine/pandoc-jekyll/internal/directive"
	"github.com/geocine/pandoc-jekyll/internal/document"
	"github.com/geocine/pandoc-jekyll/internal/gallery"
	"github.com/geocine/pandoc-jekyll/internal/meta"
)

// DirectiveStage moves one directive from the blocks into the metadata
type DirectiveStage struct {
	directive directive.Directive
	injector  *meta.Injector
	log       *slog.Logger
}

// NewDirectiveStage creates a stage for d
func NewDirectiveStage(d directive.Directive, injector *meta.Injector, log *slog.Logger) *DirectiveStage {
	return &DirectiveStage{directive: d, injector: injector, log: log}
}

func (s *DirectiveStage) Name() string {
	return "directive:" + s.directive.Name
}

// Process extracts the directive and injects its value. A missing value is
// left to the injector, which logs and skips it.
func (s *DirectiveStage) Process(doc *document.Document) error {
	value, found := s.directive.Extract(doc.Root())
	if found {
		s.log.Debug("directive extracted", "directive", s.directive.Name, "value", value)
		if s.directive.Check != nil && value != "" {
			if err := s.directive.Check(value); err != nil {
				s.log.Warn("invalid directive value", "directive", s.directive.Name, "value", value, "error", err)
			}
		}
	}
	_, err := s.injector.Inject(doc.Meta(), s.directive.Key, value)
	return err
}

// GalleryStage renders every json raw block as a gallery
type GalleryStage struct {
	renderer *gallery.Renderer
	log      *slog.Logger
}

// NewGalleryStage creates a stage backed by renderer
func NewGalleryStage(renderer *gallery.Renderer, log *slog.Logger) *GalleryStage {
	return &GalleryStage{renderer: renderer, log: log}
}

func (s *GalleryStage) Name() string {
	return "gallery"
}

// Process never fails: a gallery that does not render stays as it was
func (s *GalleryStage) Process(doc *document.Document) error {
	report := s.renderer.Transform(doc.Root())
	if report.Rendered+report.Failed > 0 {
		s.log.Debug("galleries processed", "rendered", report.Rendered, "failed", report.Failed)
	}
	return nil
}
