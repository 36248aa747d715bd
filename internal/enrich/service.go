package enrich

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/llm"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/telemetry"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"
)

// Service turns form data into prompts and returns model text.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service. A nil client behaves as unconfigured.
func NewService(client llm.Client) *Service {
	if client == nil {
		client = llm.PlaceholderClient{}
	}
	return &Service{LLM: client}
}

// SummaryInput carries the data a professional summary is written from.
type SummaryInput struct {
	Experience []model.WorkEntry
	Skills     []string
}

// CoverLetterInput carries the data a cover letter draft is written from.
type CoverLetterInput struct {
	Resume         model.ResumeDocument
	JobDescription string
	CompanyName    string
	Tone           string
}

// Summary writes a 3-4 sentence professional summary.
func (s *Service) Summary(ctx context.Context, in SummaryInput) (string, error) {
	if in.Experience == nil || in.Skills == nil {
		return "", ErrInvalidInput
	}
	return s.complete(ctx, "summary", summaryPrompt(in.Experience, in.Skills))
}

// Improve rewrites bullet points and returns one entry per point.
func (s *Service) Improve(ctx context.Context, content string) ([]string, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidInput
	}
	text, err := s.complete(ctx, "improve", improvePrompt(content))
	if err != nil {
		return nil, err
	}
	return splitPoints(text), nil
}

// CoverLetter drafts a three-paragraph letter for a job posting.
func (s *Service) CoverLetter(ctx context.Context, in CoverLetterInput) (string, error) {
	if strings.TrimSpace(in.JobDescription) == "" ||
		strings.TrimSpace(in.CompanyName) == "" ||
		strings.TrimSpace(in.Tone) == "" {
		return "", ErrInvalidInput
	}
	return s.complete(ctx, "cover_letter", coverLetterPrompt(in))
}

func (s *Service) complete(ctx context.Context, task, prompt string) (string, error) {
	start := time.Now()
	text, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		telemetry.Error("ai.generation_failed", map[string]any{
			"task":  task,
			"error": err,
		})
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	telemetry.Info("ai.generated", map[string]any{
		"task":       task,
		"latency_ms": time.Since(start).Milliseconds(),
		"chars":      len(text),
	})
	return strings.TrimSpace(text), nil
}
