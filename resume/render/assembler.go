package render

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"
)

// ErrRender wraps any failure while drawing or finalizing a document.
var ErrRender = errors.New("render pdf")

const (
	pageSize    = "Letter"
	pageUnit    = "pt"
	producerTag = "AI Resume Builder"
)

// Generator produces resume and cover letter PDFs. The zero value uses the
// built-in templates and the wall clock.
type Generator struct {
	Templates Registry
	Now       func() time.Time
}

// NewGenerator returns a Generator over the built-in templates.
func NewGenerator() *Generator {
	return &Generator{Templates: Templates, Now: time.Now}
}

var defaultGenerator = NewGenerator()

// GeneratePDF renders doc with the named template using the default generator.
// The default generator stamps the wall clock as the creation date, so two
// calls yield identical bytes only within the same second. Use a Generator
// with a fixed Now for byte-identical output.
func GeneratePDF(doc model.ResumeDocument, templateName string, photoPath string) ([]byte, error) {
	return defaultGenerator.GeneratePDF(doc, templateName, photoPath)
}

// GenerateCoverLetterPDF renders a cover letter using the default generator.
func GenerateCoverLetterPDF(req model.CoverLetterRequest) ([]byte, error) {
	return defaultGenerator.GenerateCoverLetterPDF(req)
}

// GeneratePDF reads the optional photo, renders doc with the named template
// (classic when the name is unknown) and returns the finished PDF bytes.
func (g *Generator) GeneratePDF(doc model.ResumeDocument, templateName string, photoPath string) ([]byte, error) {
	photo, err := LoadPhoto(photoPath)
	if err != nil {
		return nil, err
	}
	return g.RenderResume(doc, templateName, photo)
}

// RenderResume renders doc with an already loaded photo. Either a complete
// document is returned or an error wrapping ErrRender.
func (g *Generator) RenderResume(doc model.ResumeDocument, templateName string, photo *Photo) (out []byte, err error) {
	tpl := g.registry().Lookup(templateName)

	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrRender, rec)
		}
	}()

	pdf := g.newDocument()
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Name+" - Resume", true)
	pdf.SetAuthor(doc.Name, true)
	pdf.AddPage()

	width, height := pdf.GetPageSize()
	tpl.Render(newPDFSurface(pdf), width, height, doc, photo)

	return finalize(pdf)
}

func (g *Generator) registry() Registry {
	if len(g.Templates) == 0 {
		return Templates
	}
	return g.Templates
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

func (g *Generator) newDocument() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", pageUnit, pageSize, "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(g.now())
	pdf.SetCreator(producerTag, true)
	return pdf
}

func finalize(pdf *gofpdf.Fpdf) ([]byte, error) {
	if pdf.Err() {
		return nil, fmt.Errorf("%w: %w", ErrRender, pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}
