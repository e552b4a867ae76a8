package report

import (
	"fmt"
	"path/filepath"
)

// Renderer draws a compiled document. Implementations own the backend
// (PDF, test capture) and take positions in millimeters from the page's
// top-left corner.
type Renderer interface {
	AddPage()
	SetFont(style string, size float64)
	Text(x, y float64, s string)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64)
	Output(path string) error
}

// Render walks the document through the renderer page by page. Fills go
// down first so text and rules paint over them.
func Render(doc *Document, r Renderer) {
	for _, page := range doc.Pages {
		r.AddPage()
		for _, fill := range page.Fills {
			r.Rect(fill.X, fill.Y, fill.W, fill.H)
		}
		for _, rule := range page.Rules {
			r.Line(rule.X1, rule.Y1, rule.X2, rule.Y2)
		}
		for _, span := range page.Spans {
			r.SetFont(span.Font.Style, span.Font.Size)
			r.Text(span.X, span.Y, span.Text)
		}
	}
}

// Save renders the document and writes it under dir using the document's
// own filename. It returns the written path.
func Save(doc *Document, r Renderer, dir string) (string, error) {
	Render(doc, r)
	path := filepath.Join(dir, doc.Filename)
	if err := r.Output(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
