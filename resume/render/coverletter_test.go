package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/extract"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"
)

func TestCoverLetterParagraphOrder(t *testing.T) {
	req := model.CoverLetterRequest{
		ContactInfo: model.ContactInfo{Name: "Jane Doe", ContactInfo: "jane@x.com, 555-1234"},
		LetterText:  "Dear Hiring Manager,\r\n\r\nI am writing to apply.",
	}

	got := coverLetterParagraphs(req, fixedTime)
	want := []string{"Jane Doe", "jane@x.com", "555-1234", "March 04, 2025", "Dear Hiring Manager,", "", "I am writing to apply."}
	if len(got) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %+v", len(want), len(got), got)
	}
	for i, p := range got {
		if p.Text != want[i] {
			t.Fatalf("paragraph %d = %q, want %q", i, p.Text, want[i])
		}
	}
	if !got[0].Bold {
		t.Fatalf("sender name should be bold")
	}
	for _, p := range got[1:] {
		if p.Bold {
			t.Fatalf("only the sender name is bold, got %+v", p)
		}
	}
	if got[3].SpaceBefore == 0 || got[4].SpaceBefore == 0 {
		t.Fatalf("expected spacing before the date and the body")
	}
}

func TestGenerateCoverLetterPDF(t *testing.T) {
	req := model.CoverLetterRequest{
		ContactInfo: model.ContactInfo{Name: "Jane Doe", ContactInfo: "jane@x.com"},
		LetterText:  "Dear Hiring Manager,\n\nThanks for your time.",
	}
	g := fixedGenerator()

	first, err := g.GenerateCoverLetterPDF(req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := g.GenerateCoverLetterPDF(req)
	if err != nil {
		t.Fatalf("generate again: %v", err)
	}
	if !bytes.HasPrefix(first, []byte("%PDF-")) {
		t.Fatalf("output is not a pdf")
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("cover letter output not stable across runs")
	}
}

func TestCoverLetterTextOrder(t *testing.T) {
	req := model.CoverLetterRequest{
		ContactInfo: model.ContactInfo{Name: "Jane Doe", ContactInfo: "jane@x.com, 555-1234"},
		LetterText:  "Dear Hiring Manager,\n\nI am excited to apply.",
	}
	out, err := fixedGenerator().GenerateCoverLetterPDF(req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	text, err := extract.PDFText(context.Background(), out)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	last := -1
	for _, want := range []string{"Jane Doe", "jane@x.com", "555-1234", "March 04, 2025", "Dear Hiring Manager,", "I am excited to apply."} {
		idx := strings.Index(text, want)
		if idx < 0 {
			t.Fatalf("missing %q in %q", want, text)
		}
		if idx <= last {
			t.Fatalf("%q out of order in %q", want, text)
		}
		last = idx
	}
	if strings.Contains(text, "jane@x.com, 555-1234") {
		t.Fatalf("contact segments should be on separate lines: %q", text)
	}
}

func TestGenerateCoverLetterPDFRejectsUnencodableText(t *testing.T) {
	cases := []model.CoverLetterRequest{
		{ContactInfo: model.ContactInfo{Name: "Łukasz Nowak", ContactInfo: "l@x.pl"}, LetterText: "Hello"},
		{ContactInfo: model.ContactInfo{Name: "Jane Doe", ContactInfo: "jane@x.com, ☎ 555"}, LetterText: "Hello"},
		{ContactInfo: model.ContactInfo{Name: "Jane Doe", ContactInfo: "jane@x.com"}, LetterText: "Thanks…\nmeasured in Ω"},
	}
	for _, req := range cases {
		out, err := fixedGenerator().GenerateCoverLetterPDF(req)
		if !errors.Is(err, ErrRender) || !errors.Is(err, ErrUnencodable) {
			t.Fatalf("%+v: expected ErrRender wrapping ErrUnencodable, got %v", req, err)
		}
		if out != nil {
			t.Fatalf("%+v: expected no output on failure", req)
		}
	}
}

func TestGenerateCoverLetterPDFPaginates(t *testing.T) {
	body := strings.Repeat("This paragraph is long enough to wrap across the full text width of the page several times over.\n\n", 40)
	req := model.CoverLetterRequest{
		ContactInfo: model.ContactInfo{Name: "Jane Doe", ContactInfo: "jane@x.com"},
		LetterText:  body,
	}

	out, err := fixedGenerator().GenerateCoverLetterPDF(req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	reader, err := pdf.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("open pdf: %v", err)
	}
	if reader.NumPage() < 2 {
		t.Fatalf("expected the letter to flow onto a second page, got %d", reader.NumPage())
	}
}
