package gallery

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/aymerick/raymond"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/geocine/pandoc-jekyll/internal/logging"
	"github.com/geocine/pandoc-jekyll/internal/utils"
)

// AssetPrefix is where the site serves gallery images from
const AssetPrefix = "/assets/static/"

//go:embed templates/gallery.hbs
var defaultTemplate string

// RenderError reports a payload that could not be turned into a gallery.
// The block it came from is left as it was.
type RenderError struct {
	Payload string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render gallery: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer renders gallery descriptors to HTML
type Renderer struct {
	tpl      *raymond.Template
	markdown goldmark.Markdown
	captions bool
	strict   bool
	log      *slog.Logger
}

// Option configures a Renderer
type Option func(*Renderer) error

// WithTemplate replaces the built-in handlebars template
func WithTemplate(source string) Option {
	return func(r *Renderer) error {
		tpl, err := raymond.Parse(source)
		if err != nil {
			return fmt.Errorf("failed to parse gallery template: %w", err)
		}
		r.tpl = tpl
		return nil
	}
}

// WithTemplateFile loads the handlebars template from path
func WithTemplateFile(path string) Option {
	return func(r *Renderer) error {
		source, err := utils.ReadToString(path)
		if err != nil {
			return fmt.Errorf("failed to load gallery template: %w", err)
		}
		return WithTemplate(source)(r)
	}
}

// WithCaptions renders gallery-caption as markdown below the gallery
func WithCaptions(enabled bool) Option {
	return func(r *Renderer) error {
		r.captions = enabled
		return nil
	}
}

// WithStrictItems makes a malformed item fail the whole gallery instead of
// being skipped
func WithStrictItems(strict bool) Option {
	return func(r *Renderer) error {
		r.strict = strict
		return nil
	}
}

// WithLogger sets the logger for skipped items
func WithLogger(log *slog.Logger) Option {
	return func(r *Renderer) error {
		if log != nil {
			r.log = log
		}
		return nil
	}
}

// NewRenderer creates a renderer using the built-in template unless an
// option replaces it
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		markdown: goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough)),
		log:      logging.Discard(),
	}
	if err := WithTemplate(defaultTemplate)(r); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render parses payload as a gallery descriptor and returns the markup.
// Any failure is a *RenderError.
func (r *Renderer) Render(payload string) (string, error) {
	d, err := ParseDescriptor(payload)
	if err != nil {
		return "", &RenderError{Payload: payload, Err: err}
	}

	items := make([]map[string]string, 0, len(d.Items))
	for i, raw := range d.Items {
		item, err := ParseItem(raw)
		if err != nil {
			if r.strict {
				return "", &RenderError{Payload: payload, Err: fmt.Errorf("item %d: %w", i, err)}
			}
			r.log.Warn("skipping gallery item", "gallery", d.Name, "index", i, "item", string(raw), "error", err)
			continue
		}
		items = append(items, map[string]string{
			"file":      item.File,
			"thumbnail": item.Thumbnail,
			"href":      AssetPrefix + item.File,
			"src":       AssetPrefix + item.Thumbnail,
		})
	}

	ctx := map[string]interface{}{
		"name":     d.Name,
		"selector": classSelector(d.Name),
		"items":    items,
	}
	if r.captions && strings.TrimSpace(d.Caption) != "" {
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(d.Caption), &buf); err != nil {
			return "", &RenderError{Payload: payload, Err: fmt.Errorf("caption: %w", err)}
		}
		ctx["caption"] = strings.TrimSpace(buf.String())
	}

	out, err := r.tpl.Exec(ctx)
	if err != nil {
		return "", &RenderError{Payload: payload, Err: err}
	}
	return out, nil
}

var defaultRenderer, defaultRendererErr = NewRenderer()

// Render renders payload with the built-in template and no logging
func Render(payload string) (string, error) {
	if defaultRendererErr != nil {
		return "", defaultRendererErr
	}
	return defaultRenderer.Render(payload)
}

// classSelector returns name as a CSS class selector body, escaped for a
// single quoted string in a script element. HTML entities are not decoded
// there, so the HTML escaping used elsewhere in the template does not apply.
func classSelector(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '-', r >= 0x80 && r != 0x2028 && r != 0x2029:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				fmt.Fprintf(&b, `\\3%c `, r)
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteString(`\\`)
			b.WriteString(template.JSEscapeString(string(r)))
		}
	}
	return b.String()
}
