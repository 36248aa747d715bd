package render

// Color is an RGB triple in the 0-255 range.
type Color struct {
	R, G, B int
}

// HeadingStyle captures how a section title is drawn.
type HeadingStyle struct {
	Family string
	Size   float64
	Color  Color
}

var (
	PrimaryColor   = Color{R: 0x2c, G: 0x3e, B: 0x50}
	SecondaryColor = Color{R: 0x34, G: 0x98, B: 0xdb}
	TextColor      = Color{R: 0x34, G: 0x49, B: 0x5e}
	LightGray      = Color{R: 0xec, G: 0xf0, B: 0xf1}
	White          = Color{R: 0xff, G: 0xff, B: 0xff}
)

// Fixed text block metrics, in points.
const (
	BodyFamily = "Helvetica"
	BodySize   = 10.0
	LineHeight = 14.0
	ItemGap    = 6.0
	HeadingGap = 20.0
	ItemIndent = 10.0
)

// DefaultHeading is the sans-serif section heading used by modern.
var DefaultHeading = HeadingStyle{Family: "Helvetica", Size: 12, Color: PrimaryColor}

// Section titles, in render order.
const (
	SectionSummary        = "Professional Summary"
	SectionExperience     = "Work Experience"
	SectionEducation      = "Education"
	SectionProjects       = "Projects"
	SectionSkills         = "Skills"
	SectionCertifications = "Certifications"
	SectionAchievements   = "Achievements"
)
