package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/extract"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/render"
)

func main() {
	outDir := flag.String("out", "./out", "output directory for generated PDFs")
	photoPath := flag.String("photo", "", "optional profile photo for modern and creative templates")
	flag.Parse()

	resume := sampleResume()
	gen := render.NewGenerator()

	if err := writeModel(*outDir, resume); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	for _, name := range gen.Templates.Names() {
		pdf, err := gen.GeneratePDF(resume, name, *photoPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s failed: %v\n", name, err)
			os.Exit(1)
		}
		path := filepath.Join(*outDir, "resume_"+name+".pdf")
		if err := os.WriteFile(path, pdf, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
			os.Exit(1)
		}
		if err := validateRendered(pdf, resume.Name, "PROFESSIONAL SUMMARY", "WORK EXPERIENCE", "EDUCATION", "SKILLS", "PROJECTS"); err != nil {
			fmt.Fprintf(os.Stderr, "render validation failed for %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("OK: wrote %s\n", path)
	}

	letter := sampleCoverLetter(resume)
	pdf, err := gen.GenerateCoverLetterPDF(letter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render cover letter failed: %v\n", err)
		os.Exit(1)
	}
	path := filepath.Join(*outDir, "cover_letter.pdf")
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	if err := validateRendered(pdf, resume.Name, "Dear Hiring Manager,"); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed for cover letter: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: wrote %s\n", path)
}

func writeModel(dir string, resume model.ResumeDocument) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "sample_resume.json"), payload, 0o644)
}

// validateRendered re-reads the PDF and checks the expected text made it onto
// the page without leftover emphasis markers.
func validateRendered(pdf []byte, want ...string) error {
	text, err := extract.PDFText(context.Background(), pdf)
	if err != nil {
		return err
	}
	if missing := extract.Missing(text, want...); len(missing) > 0 {
		return fmt.Errorf("missing text: %s", strings.Join(missing, ", "))
	}
	if strings.Contains(text, "**") {
		return fmt.Errorf("unresolved emphasis markers in output")
	}
	return nil
}

func sampleResume() model.ResumeDocument {
	return model.ResumeDocument{
		Name:        "Jordan Lee",
		ContactInfo: "jordan.lee@example.com, +1-555-0102, Austin, TX",
		Summary:     "Backend engineer with 8+ years of experience building resilient APIs and data services.",
		Experience: []model.WorkEntry{
			{
				JobTitle: "Senior Backend Engineer",
				Company:  "Acme Logistics",
				Dates:    "2021 - Present",
				Responsibilities: []string{
					"Designed a routing service that reduced shipment latency by 18%.",
					"Implemented distributed tracing to cut incident triage time by 35%.",
				},
			},
			{
				JobTitle: "Backend Engineer",
				Company:  "Blue Harbor Systems",
				Dates:    "2018 - 2021",
				Responsibilities: []string{
					"Built event-driven ingestion pipelines for compliance data feeds.",
				},
			},
		},
		Education: []model.EducationEntry{
			{Degree: "BSc Computer Science", Institution: "University of Texas", Years: "2014 - 2018"},
		},
		Skills: []string{"Go", "PostgreSQL", "AWS", "Kubernetes"},
		Projects: []model.ProjectEntry{
			{Title: "tracectl", Description: "CLI for exploring distributed traces."},
		},
		Certifications: []string{"AWS Solutions Architect Associate"},
	}
}

func sampleCoverLetter(resume model.ResumeDocument) model.CoverLetterRequest {
	return model.CoverLetterRequest{
		ContactInfo: model.ContactInfo{Name: resume.Name, ContactInfo: resume.ContactInfo},
		LetterText: strings.Join([]string{
			"Dear Hiring Manager,",
			"",
			"I am excited to apply for the Staff Engineer position at Globex.",
			"",
			"Over the past eight years I have built and operated backend platforms at scale.",
			"",
			"I would welcome the chance to discuss how I can help your team.",
			"",
			"Sincerely,",
			resume.Name,
		}, "\n"),
	}
}
