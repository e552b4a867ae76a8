// Package pdf implements report.Renderer on top of go-pdf/fpdf. Layout is
// done upstream; this adapter only draws placed primitives.
package pdf

import "github.com/go-pdf/fpdf"

type Renderer struct {
	doc *fpdf.Fpdf
}

func New() *Renderer {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetDrawColor(110, 110, 110)
	doc.SetFillColor(232, 236, 240)
	return &Renderer{doc: doc}
}

func (r *Renderer) AddPage() {
	r.doc.AddPage()
}

func (r *Renderer) SetFont(style string, size float64) {
	r.doc.SetFont("Helvetica", style, size)
}

func (r *Renderer) Text(x, y float64, s string) {
	r.doc.Text(x, y, s)
}

func (r *Renderer) Line(x1, y1, x2, y2 float64) {
	r.doc.Line(x1, y1, x2, y2)
}

func (r *Renderer) Rect(x, y, w, h float64) {
	r.doc.Rect(x, y, w, h, "F")
}

func (r *Renderer) Output(path string) error {
	return r.doc.OutputFileAndClose(path)
}
