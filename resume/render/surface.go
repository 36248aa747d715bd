package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Surface is the drawing capability templates and the text block renderer
// need. Coordinates are in points with the origin at the top-left corner and
// y growing downwards; Text draws at the baseline.
type Surface interface {
	SetFont(family, style string, size float64)
	SetTextColor(c Color)
	SetFillColor(c Color)
	SetDrawColor(c Color)
	Text(x, y float64, s string)
	StringWidth(s string) float64
	Rect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
	Image(photo *Photo, x, y, w, h float64)
}

// pdfSurface draws onto a gofpdf document.
type pdfSurface struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
	images    map[*Photo]string
}

func newPDFSurface(pdf *gofpdf.Fpdf) *pdfSurface {
	return &pdfSurface{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		images:    make(map[*Photo]string),
	}
}

func (s *pdfSurface) SetFont(family, style string, size float64) {
	s.pdf.SetFont(family, style, size)
}

func (s *pdfSurface) SetTextColor(c Color) { s.pdf.SetTextColor(c.R, c.G, c.B) }
func (s *pdfSurface) SetFillColor(c Color) { s.pdf.SetFillColor(c.R, c.G, c.B) }
func (s *pdfSurface) SetDrawColor(c Color) { s.pdf.SetDrawColor(c.R, c.G, c.B) }

// Text halts the document with ErrUnencodable instead of drawing text the
// font would silently replace.
func (s *pdfSurface) Text(x, y float64, txt string) {
	if err := checkEncodable(txt); err != nil {
		s.pdf.SetError(err)
		return
	}
	s.pdf.Text(x, y, s.translate(txt))
}

func (s *pdfSurface) StringWidth(txt string) float64 {
	return s.pdf.GetStringWidth(s.translate(txt))
}

func (s *pdfSurface) Rect(x, y, w, h float64) {
	s.pdf.Rect(x, y, w, h, "F")
}

func (s *pdfSurface) Line(x1, y1, x2, y2 float64) {
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *pdfSurface) Image(photo *Photo, x, y, w, h float64) {
	if photo == nil || len(photo.Data) == 0 {
		return
	}
	name, ok := s.images[photo]
	opts := gofpdf.ImageOptions{ImageType: photo.ImageType}
	if !ok {
		name = fmt.Sprintf("photo-%d", len(s.images)+1)
		s.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(photo.Data))
		s.images[photo] = name
	}
	s.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// drawCentered draws txt horizontally centered on cx.
func drawCentered(s Surface, cx, y float64, txt string) {
	s.Text(cx-s.StringWidth(txt)/2, y, txt)
}
