package render

import (
	"fmt"
	"strings"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"
)

const bullet = "•"

// ExperienceItem formats a work entry as a bold title line followed by one
// bulleted line per responsibility.
func ExperienceItem(e model.WorkEntry) string {
	lines := make([]string, 0, len(e.Responsibilities)+1)
	lines = append(lines, fmt.Sprintf("**%s at %s (%s)**", e.JobTitle, e.Company, e.Dates))
	for _, r := range e.Responsibilities {
		lines = append(lines, bullet+" "+r)
	}
	return strings.Join(lines, "\n")
}

// EducationItem formats an education entry: bold degree, then institution and years.
func EducationItem(e model.EducationEntry) string {
	detail := e.Institution
	if strings.TrimSpace(e.Years) != "" {
		detail = fmt.Sprintf("%s (%s)", e.Institution, e.Years)
	}
	return fmt.Sprintf("**%s**\n%s", e.Degree, detail)
}

// ProjectItem formats a project as a bold title and an indented description.
func ProjectItem(p model.ProjectEntry) string {
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Sprintf("**%s**", p.Title)
	}
	return fmt.Sprintf("**%s**\n  %s", p.Title, p.Description)
}

// SkillsItem joins all skills into a single comma separated item.
func SkillsItem(skills []string) string {
	return strings.Join(skills, ", ")
}

// BulletItems prefixes every entry with a bullet.
func BulletItems(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, bullet+" "+e)
	}
	return out
}

func mapItems[T any](in []T, f func(T) string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

// section is a titled list of pre-formatted items.
type section struct {
	Title string
	Items []string
}

// resumeSections returns the sections to draw, in order, skipping any that
// have nothing to show.
func resumeSections(doc model.ResumeDocument) []section {
	var out []section
	add := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		out = append(out, section{Title: title, Items: items})
	}

	if strings.TrimSpace(doc.Summary) != "" {
		add(SectionSummary, []string{doc.Summary})
	}
	add(SectionExperience, mapItems(doc.Experience, ExperienceItem))
	add(SectionEducation, mapItems(doc.Education, EducationItem))
	add(SectionProjects, mapItems(doc.Projects, ProjectItem))
	if len(doc.Skills) > 0 {
		add(SectionSkills, []string{SkillsItem(doc.Skills)})
	}
	add(SectionCertifications, BulletItems(doc.Certifications))
	add(SectionAchievements, BulletItems(doc.Achievements))
	return out
}

// drawSections chains DrawSection over every present section.
func drawSections(s Surface, x, y float64, doc model.ResumeDocument, heading HeadingStyle) float64 {
	for _, sec := range resumeSections(doc) {
		y = DrawSection(s, x, y, sec.Title, sec.Items, heading)
	}
	return y
}
