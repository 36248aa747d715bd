package enrich

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/server/respond"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"
)

// Handler exposes the AI writing helpers.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches AI routes under /ai.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ai := rg.Group("/ai")
	ai.POST("/summary", h.summary)
	ai.POST("/improve", h.improve)
	ai.POST("/cover-letter", h.coverLetter)
}

type summaryRequest struct {
	Experience []model.WorkEntry `json:"experience"`
	Skills     []string          `json:"skills"`
}

type improveRequest struct {
	Content string `json:"content"`
}

type coverLetterRequest struct {
	ResumeData     *model.ResumeDocument `json:"resumeData"`
	JobDescription string                `json:"jobDescription"`
	CompanyName    string                `json:"companyName"`
	Tone           string                `json:"tone"`
}

func (h *Handler) summary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Experience == nil || req.Skills == nil {
		respond.Validation(c, "Missing experience or skills data", missingFields(
			field{"experience", req.Experience == nil},
			field{"skills", req.Skills == nil},
		))
		return
	}
	text, err := h.Svc.Summary(c.Request.Context(), SummaryInput{Experience: req.Experience, Skills: req.Skills})
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"summary": text})
}

func (h *Handler) improve(c *gin.Context) {
	var req improveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "No content provided", missingFields(field{"content", true}))
		return
	}
	points, err := h.Svc.Improve(c.Request.Context(), req.Content)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"improved_content": points})
}

func (h *Handler) coverLetter(c *gin.Context) {
	var req coverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ResumeData == nil {
		respond.Validation(c, "Missing required data for cover letter", missingFields(
			field{"resumeData", req.ResumeData == nil},
			field{"jobDescription", req.JobDescription == ""},
			field{"companyName", req.CompanyName == ""},
			field{"tone", req.Tone == ""},
		))
		return
	}
	text, err := h.Svc.CoverLetter(c.Request.Context(), CoverLetterInput{
		Resume:         *req.ResumeData,
		JobDescription: req.JobDescription,
		CompanyName:    req.CompanyName,
		Tone:           req.Tone,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"cover_letter_text": text})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Validation(c, "Missing required data", nil)
	case errors.Is(err, ErrUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "ai_unavailable", "AI generation is not configured", nil)
	case errors.Is(err, ErrGeneration):
		respond.Error(c, http.StatusBadGateway, "ai_generation_failed", "AI generation failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "AI request failed", nil)
	}
}

type field struct {
	name    string
	missing bool
}

func missingFields(fields ...field) []map[string]string {
	out := []map[string]string{}
	for _, f := range fields {
		if f.missing {
			out = append(out, map[string]string{"field": f.name, "issue": "required"})
		}
	}
	return out
}
