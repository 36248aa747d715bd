package render

import "github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"

const (
	classicMargin   = 72.0
	classicNameY    = 72.0
	classicContactY = 90.0
	classicBodyY    = 130.0
)

var classicHeading = HeadingStyle{Family: "Times", Size: 12, Color: PrimaryColor}

// classicTemplate is a single full-width column with a centered serif header.
// It does not show a photo.
type classicTemplate struct{}

func (classicTemplate) Name() model.TemplateName { return model.TemplateClassic }

func (classicTemplate) Render(s Surface, width, height float64, doc model.ResumeDocument, photo *Photo) {
	s.SetTextColor(PrimaryColor)
	s.SetFont("Times", "B", 24)
	drawCentered(s, width/2, classicNameY, doc.Name)
	s.SetFont("Times", "", 11)
	drawCentered(s, width/2, classicContactY, doc.ContactInfo)

	drawSections(s, classicMargin, classicBodyY, doc, classicHeading)
}
