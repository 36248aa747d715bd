package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"
)

// CoverLetterDateLayout is the date line format, e.g. "March 04, 2025".
const CoverLetterDateLayout = "January 02, 2006"

const (
	letterMargin   = 72.0
	letterFontSize = 11.0
	letterLeading  = 15.0
	letterSpacer   = 18.0
)

// paragraph is one block of the cover letter flow.
type paragraph struct {
	Text        string
	Bold        bool
	SpaceBefore float64
}

// coverLetterParagraphs lays out the letter as a sequence of paragraphs:
// bold sender name, one paragraph per contact segment, the date, then one
// paragraph per line of the letter body.
func coverLetterParagraphs(req model.CoverLetterRequest, date time.Time) []paragraph {
	out := []paragraph{{Text: strings.TrimSpace(req.ContactInfo.Name), Bold: true}}
	for _, part := range model.ContactSegments(req.ContactInfo.ContactInfo) {
		out = append(out, paragraph{Text: part})
	}
	out = append(out, paragraph{Text: date.Format(CoverLetterDateLayout), SpaceBefore: letterSpacer})

	body := strings.ReplaceAll(req.LetterText, "\r\n", "\n")
	for i, line := range strings.Split(body, "\n") {
		p := paragraph{Text: line}
		if i == 0 {
			p.SpaceBefore = letterSpacer
		}
		out = append(out, p)
	}
	return out
}

// GenerateCoverLetterPDF renders a flowing, automatically paginated letter.
func (g *Generator) GenerateCoverLetterPDF(req model.CoverLetterRequest) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrRender, rec)
		}
	}()

	paragraphs := coverLetterParagraphs(req, g.now())
	for _, p := range paragraphs {
		if err := checkEncodable(p.Text); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRender, err)
		}
	}

	pdf := g.newDocument()
	pdf.SetMargins(letterMargin, letterMargin, letterMargin)
	pdf.SetAutoPageBreak(true, letterMargin)
	pdf.SetTitle("Cover Letter", true)
	pdf.SetAuthor(req.ContactInfo.Name, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTextColor(0, 0, 0)
	for _, p := range paragraphs {
		if p.SpaceBefore > 0 {
			pdf.Ln(p.SpaceBefore)
		}
		if strings.TrimSpace(p.Text) == "" {
			pdf.Ln(letterLeading)
			continue
		}
		style := ""
		if p.Bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, letterFontSize)
		pdf.MultiCell(0, letterLeading, tr(p.Text), "", "L", false)
	}

	return finalize(pdf)
}
