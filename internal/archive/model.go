package archive

import "time"

// Kind identifies what a generated document is.
type Kind string

const (
	KindResume      Kind = "resume"
	KindCoverLetter Kind = "cover_letter"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindResume || k == KindCoverLetter
}

// PDFMimeType is the content type of every archived document.
const PDFMimeType = "application/pdf"

// Document is a previously generated PDF kept for its owner. Only the
// rendered output is stored, never the submitted resume data.
type Document struct {
	ID         string
	UserID     string
	Kind       Kind
	TemplateID string
	Title      string
	StorageKey string
	MimeType   string
	SizeBytes  int64
	CreatedAt  time.Time
	DeletedAt  *time.Time
}

// FileName is the download name for the document.
func (d Document) FileName() string {
	if d.Kind == KindCoverLetter {
		return "cover_letter.pdf"
	}
	return "resume.pdf"
}
