package model

import (
	"errors"
	"strings"
)

// TemplateName identifies a visual resume layout.
type TemplateName string

const (
	TemplateClassic  TemplateName = "classic"
	TemplateModern   TemplateName = "modern"
	TemplateCreative TemplateName = "creative"
)

// ResumeDocument is the form payload a resume is rendered from.
type ResumeDocument struct {
	Name           string           `json:"name"`
	ContactInfo    string           `json:"contact_info"`
	Summary        string           `json:"summary"`
	Experience     []WorkEntry      `json:"experience"`
	Education      []EducationEntry `json:"education"`
	Skills         []string         `json:"skills"`
	Projects       []ProjectEntry   `json:"projects,omitempty"`
	Certifications []string         `json:"certifications,omitempty"`
	Achievements   []string         `json:"achievements,omitempty"`
	Template       TemplateName     `json:"template,omitempty"`
}

// WorkEntry represents a work history entry.
type WorkEntry struct {
	JobTitle         string   `json:"job_title"`
	Company          string   `json:"company"`
	Dates            string   `json:"dates"`
	Responsibilities []string `json:"responsibilities"`
}

// EducationEntry represents an education entry.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Years       string `json:"years"`
}

// ProjectEntry represents a notable project.
type ProjectEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ContactInfo is the sender block of a cover letter.
type ContactInfo struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// CoverLetterRequest carries an already generated letter and its sender.
type CoverLetterRequest struct {
	ContactInfo ContactInfo `json:"contactInfo"`
	LetterText  string      `json:"letterText"`
}

var (
	ErrMissingName        = errors.New("name is required")
	ErrMissingContactInfo = errors.New("contact_info is required")
	ErrMissingSummary     = errors.New("summary is required")
	ErrMissingSkills      = errors.New("skills are required")
)

// Validate enforces the mandatory top-level fields.
func (d ResumeDocument) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(d.ContactInfo) == "" {
		return ErrMissingContactInfo
	}
	if strings.TrimSpace(d.Summary) == "" {
		return ErrMissingSummary
	}
	if len(d.Skills) == 0 {
		return ErrMissingSkills
	}
	return nil
}

// TemplateOrDefault returns the requested template, or classic when none was chosen.
func (d ResumeDocument) TemplateOrDefault() TemplateName {
	name := TemplateName(strings.ToLower(strings.TrimSpace(string(d.Template))))
	if name == "" {
		return TemplateClassic
	}
	return name
}

// ContactSegments splits a comma separated contact line into trimmed, non-empty parts.
func ContactSegments(contact string) []string {
	parts := strings.Split(contact, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
