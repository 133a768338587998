// Package gofpdf renders laid-out pages to PDF bytes.
package gofpdf

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/pwalen/vitalwiki"
)

// Compile-time interface verification.
var _ vitalwiki.Renderer = (*Renderer)(nil)

// Renderer draws layout pages with gofpdf. Pagination is owned entirely
// by the layout engine, so automatic page breaking is disabled.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws every page's text operations at their computed positions
// and returns the finished PDF. Draw op coordinates put Y at the top of
// the text line; gofpdf positions text at the baseline, so the font size
// is added when drawing.
func (r *Renderer) Render(pages []vitalwiki.LayoutPage) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			style := ""
			if op.Bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, op.Size)
			pdf.Text(op.X, op.Y+op.Size, tr(op.Text))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, vitalwiki.Errorf(vitalwiki.EINTERNAL, "writing PDF: %v", err)
	}
	return buf.Bytes(), nil
}
