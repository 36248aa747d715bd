package contract

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAcceptsMinimalDocument(t *testing.T) {
	raw := []byte(`{"name":"Jane Doe","contact_info":"jane@x.com","summary":"Engineer.","skills":["Go"]}`)

	doc, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.Name)
	assert.Empty(t, doc.Experience)
}

func TestDecodeAcceptsNullOptionalSections(t *testing.T) {
	raw := []byte(`{"name":"Jane","contact_info":"x","summary":"s","skills":["Go"],"projects":null,"certifications":null,"template":null}`)

	_, err := Decode(raw)
	require.NoError(t, err)
}

func TestValidateReportsMissingFields(t *testing.T) {
	err := Validate([]byte(`{"name":"Jane Doe","skills":[]}`))
	require.Error(t, err)

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	joined := strings.Join(verr.Fields, "\n")
	assert.Contains(t, joined, "contact_info")
	assert.Contains(t, joined, "summary")
	assert.Contains(t, joined, "skills")
}

func TestValidateRejectsBlankName(t *testing.T) {
	err := Validate([]byte(`{"name":"   ","contact_info":"x","summary":"s","skills":["Go"]}`))
	require.Error(t, err)
}

func TestValidateRejectsWrongTypes(t *testing.T) {
	err := Validate([]byte(`{"name":"Jane","contact_info":"x","summary":"s","skills":["Go"],"experience":[{"job_title":"Eng","company":"Acme","responsibilities":"not a list"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "responsibilities")
}

func TestValidateRejectsGarbage(t *testing.T) {
	require.Error(t, Validate([]byte(`not json`)))
	require.Error(t, Validate(nil))
}

func TestValidateAllowsUnknownTemplate(t *testing.T) {
	require.NoError(t, Validate([]byte(`{"name":"Jane","contact_info":"x","summary":"s","skills":["Go"],"template":"nonexistent-template"}`)))
}
