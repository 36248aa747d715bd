package render

import (
	"strings"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"
)

const (
	modernSidebarRatio = 0.35
	modernPad          = 24.0
	modernTopY         = 72.0
	modernPhotoSize    = 110.0
	modernPhotoY       = 40.0
	modernColumnGap    = 18.0
)

// modernTemplate puts identity and contact details in a shaded left sidebar
// and the resume sections in the column to its right.
type modernTemplate struct{}

func (modernTemplate) Name() model.TemplateName { return model.TemplateModern }

func (modernTemplate) Render(s Surface, width, height float64, doc model.ResumeDocument, photo *Photo) {
	sidebarW := width * modernSidebarRatio

	s.SetFillColor(LightGray)
	s.Rect(0, 0, sidebarW, height)

	y := modernTopY
	if photo != nil {
		s.Image(photo, (sidebarW-modernPhotoSize)/2, modernPhotoY, modernPhotoSize, modernPhotoSize)
		y = modernPhotoY + modernPhotoSize + 30
	}

	s.SetTextColor(PrimaryColor)
	s.SetFont("Helvetica", "B", 16)
	for _, line := range wrapWords(s, doc.Name, sidebarW-2*modernPad) {
		s.Text(modernPad, y, line)
		y += 20
	}

	y += 10
	s.SetTextColor(SecondaryColor)
	s.SetFont("Helvetica", "B", 10)
	s.Text(modernPad, y, "CONTACT")
	y += LineHeight + 2

	s.SetTextColor(TextColor)
	s.SetFont("Helvetica", "", 9)
	for _, part := range model.ContactSegments(doc.ContactInfo) {
		s.Text(modernPad, y, part)
		y += LineHeight
	}

	drawSections(s, sidebarW+modernColumnGap, modernTopY, doc, DefaultHeading)
}

// wrapWords greedily packs words into lines no wider than maxWidth using the
// surface's current font. A single word wider than maxWidth gets its own line.
func wrapWords(s Surface, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if s.StringWidth(candidate) > maxWidth {
			lines = append(lines, current)
			current = w
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
