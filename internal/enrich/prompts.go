package enrich

import (
	"fmt"
	"strings"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"
)

func summaryPrompt(experience []model.WorkEntry, skills []string) string {
	var exp strings.Builder
	for _, e := range experience {
		fmt.Fprintf(&exp, "- Title: %s at %s. Responsibilities: %s\n",
			e.JobTitle, e.Company, strings.Join(e.Responsibilities, "; "))
	}
	return fmt.Sprintf(`As a professional resume writer, create a concise professional summary of 3-4 sentences based on these skills and experiences.
Use strong action verbs and highlight key achievements.
Skills: %s
Work Experience:
%s
Generated Summary:
`, strings.Join(skills, ", "), exp.String())
}

func improvePrompt(content string) string {
	return fmt.Sprintf(`You are an expert resume editor. Rewrite the following resume bullet points to be more achievement-oriented and professional.
- Start each point with a strong action verb.
- Quantify results with numbers or metrics where possible.
- Keep each point concise and impactful.
- Return ONLY the rewritten bullet points, each on a new line. Do not add any extra commentary.

Original points:
%s

Rewritten points:
`, content)
}

func coverLetterPrompt(in CoverLetterInput) string {
	var ctx strings.Builder
	fmt.Fprintf(&ctx, "My Name: %s\n", in.Resume.Name)
	fmt.Fprintf(&ctx, "My Skills: %s\n", strings.Join(in.Resume.Skills, ", "))
	ctx.WriteString("My Experience Summary:\n")
	for _, e := range in.Resume.Experience {
		fmt.Fprintf(&ctx, "- At %s, I was responsible for: %s\n", e.Company, strings.Join(e.Responsibilities, "; "))
	}
	return fmt.Sprintf(`As a professional job applicant, write a formal and compelling three-paragraph cover letter for a position at %[1]s.
Adopt a %[2]s tone throughout the letter.
Tailor the letter specifically to the provided job description, using my skills and experience as proof.
- Paragraph 1: State the position and express genuine interest in the role and %[1]s.
- Paragraph 2: Connect my skills and experience directly to the key requirements in the job description.
- Paragraph 3: Reiterate my excitement and include a strong call to action.

My Information for Context:
%[3]s
Job Description to Apply For:
%[4]s
Generated Cover Letter (start with 'Dear Hiring Manager,'):
`, in.CompanyName, in.Tone, ctx.String(), in.JobDescription)
}

// splitPoints turns a bulleted model answer into clean lines.
func splitPoints(text string) []string {
	lines := strings.Split(strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		point := strings.TrimSpace(strings.TrimLeft(line, "-* "))
		if point == "" {
			continue
		}
		out = append(out, point)
	}
	return out
}
