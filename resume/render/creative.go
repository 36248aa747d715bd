package render

import "github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"

const (
	creativeMargin    = 72.0
	creativeBandH     = 110.0
	creativeNameY     = 58.0
	creativeContactY  = 82.0
	creativeBodyY     = 150.0
	creativePhotoSize = 80.0
	creativeRuleX     = 60.0
	creativeBottom    = 48.0
)

var creativeHeading = HeadingStyle{Family: "Helvetica", Size: 13, Color: SecondaryColor}

// creativeTemplate draws a colored header band with the name and contact in
// white, the photo on the right of the band and an accent rule in the gutter.
type creativeTemplate struct{}

func (creativeTemplate) Name() model.TemplateName { return model.TemplateCreative }

func (creativeTemplate) Render(s Surface, width, height float64, doc model.ResumeDocument, photo *Photo) {
	s.SetFillColor(SecondaryColor)
	s.Rect(0, 0, width, creativeBandH)

	if photo != nil {
		s.Image(photo, width-creativeMargin-creativePhotoSize, (creativeBandH-creativePhotoSize)/2, creativePhotoSize, creativePhotoSize)
	}

	s.SetTextColor(White)
	s.SetFont("Helvetica", "B", 26)
	s.Text(creativeMargin, creativeNameY, doc.Name)
	s.SetFont("Helvetica", "", 10)
	s.Text(creativeMargin, creativeContactY, doc.ContactInfo)

	s.SetDrawColor(SecondaryColor)
	s.Line(creativeRuleX, creativeBandH+20, creativeRuleX, height-creativeBottom)

	drawSections(s, creativeMargin, creativeBodyY, doc, creativeHeading)
}
