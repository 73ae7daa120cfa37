package gallery

import (
	"github.com/geocine/pandoc-jekyll/internal/ast"
	"github.com/geocine/pandoc-jekyll/internal/directive"
)

// Raw block formats on either side of the rewrite
const (
	FormatJSON = "json"
	FormatHTML = "html"
)

// Report counts the outcome of a Transform call
type Report struct {
	Rendered int
	Failed   int
}

// Transform rewrites every top-level json raw block under root into an html
// raw block holding the rendered gallery. Blocks that fail to render are
// left untouched and logged.
func (r *Renderer) Transform(root *ast.Node) Report {
	var report Report
	for _, payload := range directive.ListAll(root, FormatJSON) {
		textNode, _ := payload.Index(1)
		text, ok := textNode.Str()
		if !ok {
			report.Failed++
			r.log.Warn("failed to transform gallery data", "error", "payload is not a string")
			continue
		}

		markup, err := r.Render(text)
		if err != nil {
			report.Failed++
			r.log.Warn("failed to transform gallery data", "data", text, "error", err)
			continue
		}

		payload.SetIndex(0, ast.String(FormatHTML))
		payload.SetIndex(1, ast.String(markup))
		report.Rendered++
	}
	return report
}
