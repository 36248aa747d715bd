package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() ResumeDocument {
	return ResumeDocument{
		Name:        "Jane Doe",
		ContactInfo: "jane@x.com, 555-1234",
		Summary:     "Engineer.",
		Skills:      []string{"Go"},
	}
}

func TestValidateRequiresMandatoryFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ResumeDocument)
		want   error
	}{
		{name: "valid", mutate: func(*ResumeDocument) {}, want: nil},
		{name: "name", mutate: func(d *ResumeDocument) { d.Name = "  " }, want: ErrMissingName},
		{name: "contact", mutate: func(d *ResumeDocument) { d.ContactInfo = "" }, want: ErrMissingContactInfo},
		{name: "summary", mutate: func(d *ResumeDocument) { d.Summary = "" }, want: ErrMissingSummary},
		{name: "skills", mutate: func(d *ResumeDocument) { d.Skills = nil }, want: ErrMissingSkills},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(&doc)
			assert.ErrorIs(t, doc.Validate(), tt.want)
		})
	}
}

func TestTemplateOrDefault(t *testing.T) {
	doc := validDocument()
	assert.Equal(t, TemplateClassic, doc.TemplateOrDefault())

	doc.Template = " Modern "
	assert.Equal(t, TemplateModern, doc.TemplateOrDefault())
}

func TestContactSegments(t *testing.T) {
	assert.Equal(t, []string{"jane@x.com", "555-1234"}, ContactSegments("jane@x.com, 555-1234"))
	assert.Equal(t, []string{"a", "b"}, ContactSegments(" a ,, b ,"))
	assert.Empty(t, ContactSegments(""))
}

func TestDecodeFormPayload(t *testing.T) {
	raw := `{
		"name": "Jane Doe",
		"contact_info": "jane@x.com",
		"summary": "Builds things.",
		"experience": [{"job_title": "Engineer", "company": "Acme", "dates": "2020-2023", "responsibilities": ["Did X"]}],
		"education": [{"degree": "BSc", "institution": "MIT", "years": "2016-2020"}],
		"skills": ["Go", "SQL"],
		"template": "creative"
	}`

	var doc ResumeDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	require.NoError(t, doc.Validate())
	assert.Equal(t, "Acme", doc.Experience[0].Company)
	assert.Equal(t, []string{"Did X"}, doc.Experience[0].Responsibilities)
	assert.Equal(t, "MIT", doc.Education[0].Institution)
	assert.Equal(t, TemplateCreative, doc.TemplateOrDefault())
	assert.Empty(t, doc.Projects)
}

func TestDecodeCoverLetterRequest(t *testing.T) {
	raw := `{"contactInfo": {"name": "Jane Doe", "contact_info": "jane@x.com, 555-1234"}, "letterText": "Dear Hiring Manager,"}`

	var req CoverLetterRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	assert.Equal(t, "Jane Doe", req.ContactInfo.Name)
	assert.Equal(t, "jane@x.com, 555-1234", req.ContactInfo.ContactInfo)
	assert.Equal(t, "Dear Hiring Manager,", req.LetterText)
}
