package render

import (
	"sort"
	"strings"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"
)

// Template draws a complete resume onto a surface of the given page size.
type Template interface {
	Name() model.TemplateName
	Render(s Surface, width, height float64, doc model.ResumeDocument, photo *Photo)
}

// Registry maps template names to layouts.
type Registry map[model.TemplateName]Template

// DefaultTemplate is used when a requested name is not registered.
const DefaultTemplate = model.TemplateClassic

// Templates holds the built-in layouts.
var Templates = NewRegistry(classicTemplate{}, modernTemplate{}, creativeTemplate{})

// NewRegistry indexes templates by name.
func NewRegistry(templates ...Template) Registry {
	r := make(Registry, len(templates))
	for _, t := range templates {
		r[t.Name()] = t
	}
	return r
}

// Lookup returns the template for name, falling back to classic.
func (r Registry) Lookup(name string) Template {
	key := model.TemplateName(strings.ToLower(strings.TrimSpace(name)))
	if t, ok := r[key]; ok {
		return t
	}
	if t, ok := r[DefaultTemplate]; ok {
		return t
	}
	return classicTemplate{}
}

// Names lists registered template names in sorted order.
func (r Registry) Names() []string {
	out := make([]string, 0, len(r))
	for name := range r {
		out = append(out, string(name))
	}
	sort.Strings(out)
	return out
}
