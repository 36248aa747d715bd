package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/llm"
)

type fakeGenerator struct {
	resp     *genai.GenerateContentResponse
	err      error
	model    string
	contents []*genai.Content
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role:  "model",
				Parts: []*genai.Part{{Text: text}},
			},
		}},
	}
}

func TestCompleteTrimsText(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse("\n Led a team of five. \n")}
	client := NewWithGenerator(gen, "gemini-1.5-flash")

	got, err := client.Complete(context.Background(), "improve this")
	require.NoError(t, err)
	assert.Equal(t, "Led a team of five.", got)
	assert.Equal(t, "gemini-1.5-flash", gen.model)
	require.Len(t, gen.contents, 1)
	require.Len(t, gen.contents[0].Parts, 1)
	assert.Equal(t, "improve this", gen.contents[0].Parts[0].Text)
}

func TestCompleteEmptyResponse(t *testing.T) {
	client := NewWithGenerator(&fakeGenerator{resp: &genai.GenerateContentResponse{}}, "m")
	_, err := client.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}

func TestCompleteProviderError(t *testing.T) {
	boom := errors.New("quota exceeded")
	client := NewWithGenerator(&fakeGenerator{err: boom}, "m")
	_, err := client.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, boom)
}

func TestNewClientRequiresSettings(t *testing.T) {
	_, err := NewClient(context.Background(), "key", "")
	assert.Error(t, err)
	_, err = NewClient(context.Background(), "", "gemini-1.5-flash")
	assert.Error(t, err)
}
