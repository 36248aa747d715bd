package contract

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(resumeSchema)

// ValidationError lists every schema violation found in a payload.
type ValidationError struct {
	Fields []string
}

func (e ValidationError) Error() string {
	return "invalid resume data: " + strings.Join(e.Fields, "; ")
}

// Decode validates raw JSON against the resume schema and decodes it.
func Decode(raw []byte) (model.ResumeDocument, error) {
	if err := Validate(raw); err != nil {
		return model.ResumeDocument{}, err
	}
	var doc model.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.ResumeDocument{}, fmt.Errorf("decode resume data: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return model.ResumeDocument{}, ValidationError{Fields: []string{err.Error()}}
	}
	return doc, nil
}

// Validate checks raw JSON against the embedded resume schema.
func Validate(raw []byte) error {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return ValidationError{Fields: []string{"resume data is required"}}
	}
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return ValidationError{Fields: []string{"resume data must be a JSON object"}}
	}
	if res.Valid() {
		return nil
	}
	fields := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		fields = append(fields, e.String())
	}
	return ValidationError{Fields: fields}
}
