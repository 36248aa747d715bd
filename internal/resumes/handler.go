package resumes

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/archive"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/metrics"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/server/middleware"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/server/respond"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/telemetry"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/util"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/contract"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/model"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/resume/render"
)

const (
	resumeFileName      = "resume.pdf"
	coverLetterFileName = "cover_letter.pdf"
	defaultMaxUpload    = 16 << 20

	unencodableMessage = "The document contains characters the PDF fonts cannot display."
)

// Archiver keeps generated PDFs for identified callers.
type Archiver interface {
	Save(ctx context.Context, in archive.SaveInput) (archive.Document, error)
}

// Handler renders resumes and cover letters to PDF.
type Handler struct {
	Gen            *render.Generator
	Archive        Archiver
	UploadDir      string
	MaxUploadBytes int64
}

// NewHandler constructs a Handler. archiver may be nil to disable archiving.
func NewHandler(gen *render.Generator, archiver Archiver, uploadDir string, maxUploadBytes int64) *Handler {
	if gen == nil {
		gen = render.NewGenerator()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUpload
	}
	return &Handler{Gen: gen, Archive: archiver, UploadDir: uploadDir, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.listTemplates)
	rg.POST("/resumes/pdf", h.generateResume)
	rg.POST("/cover-letters/pdf", h.generateCoverLetter)
}

func (h *Handler) listTemplates(c *gin.Context) {
	respond.OK(c, gin.H{
		"templates": h.registry().Names(),
		"default":   string(render.DefaultTemplate),
	})
}

func (h *Handler) generateResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	raw, photoPath, err := h.readResumeRequest(c)
	if photoPath != "" {
		defer removeUpload(photoPath)
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "upload exceeds size limit", nil)
		case errors.Is(err, util.ErrInvalidFileName):
			respond.Validation(c, "invalid profile photo name", nil)
		default:
			respond.Validation(c, "invalid request body", nil)
		}
		return
	}

	doc, err := contract.Decode(raw)
	if err != nil {
		var verr contract.ValidationError
		if errors.As(err, &verr) {
			respond.Validation(c, "invalid resume data", verr.Fields)
			return
		}
		respond.Validation(c, "invalid resume data", nil)
		return
	}

	templateName := string(h.registry().Lookup(string(doc.TemplateOrDefault())).Name())
	c.Set(middleware.TemplateKey, templateName)

	start := time.Now()
	pdf, err := h.Gen.GeneratePDF(doc, templateName, photoPath)
	if err != nil {
		metrics.ObserveFailed(metrics.KindResume)
		if errors.Is(err, render.ErrUnsupportedPhoto) {
			respond.Validation(c, "profile photo must be a JPEG, PNG or GIF image", nil)
			return
		}
		if errors.Is(err, render.ErrUnencodable) {
			respond.Error(c, http.StatusUnprocessableEntity, "unsupported_characters", unencodableMessage, nil)
			return
		}
		telemetry.Error("resume.render_failed", map[string]any{
			"template": templateName,
			"error":    err,
		})
		respond.Error(c, http.StatusInternalServerError, "render_failed", "An error occurred while generating the resume.", nil)
		return
	}
	metrics.ObserveGenerated(metrics.KindResume, templateName, time.Since(start))

	h.archive(c, archive.KindResume, templateName, doc.Name, pdf)
	c.Set(middleware.PDFBytesKey, len(pdf))
	respond.PDF(c, resumeFileName, pdf)
}

// readResumeRequest returns the resume JSON and, for multipart requests with a
// profile photo, the path the photo was saved to.
func (h *Handler) readResumeRequest(c *gin.Context) ([]byte, string, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		raw, err := io.ReadAll(c.Request.Body)
		return raw, "", err
	}
	if err := c.Request.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		return nil, "", err
	}
	raw := []byte(c.Request.FormValue("resumeData"))

	file, err := c.FormFile("profilePhoto")
	if errors.Is(err, http.ErrMissingFile) || (err == nil && file.Filename == "") {
		return raw, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	name, err := util.SanitizeFileName(file.Filename)
	if err != nil {
		return nil, "", err
	}
	if err := os.MkdirAll(h.uploadDir(), 0o755); err != nil {
		return nil, "", err
	}
	path := filepath.Join(h.uploadDir(), uuid.NewString()+"_"+name)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return nil, path, err
	}
	return raw, path, nil
}

func (h *Handler) generateCoverLetter(c *gin.Context) {
	var req struct {
		ContactInfo *model.ContactInfo `json:"contactInfo"`
		LetterText  *string            `json:"letterText"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ContactInfo == nil || req.LetterText == nil {
		respond.Validation(c, "Missing data for PDF generation", nil)
		return
	}

	start := time.Now()
	pdf, err := h.Gen.GenerateCoverLetterPDF(model.CoverLetterRequest{
		ContactInfo: *req.ContactInfo,
		LetterText:  *req.LetterText,
	})
	if err != nil {
		metrics.ObserveFailed(metrics.KindCoverLetter)
		if errors.Is(err, render.ErrUnencodable) {
			respond.Error(c, http.StatusUnprocessableEntity, "unsupported_characters", unencodableMessage, nil)
			return
		}
		telemetry.Error("cover_letter.render_failed", map[string]any{"error": err})
		respond.Error(c, http.StatusInternalServerError, "render_failed", "An error occurred while generating the cover letter.", nil)
		return
	}
	metrics.ObserveGenerated(metrics.KindCoverLetter, "", time.Since(start))

	h.archive(c, archive.KindCoverLetter, "", req.ContactInfo.Name, pdf)
	c.Set(middleware.PDFBytesKey, len(pdf))
	respond.PDF(c, coverLetterFileName, pdf)
}

// archive stores the PDF for identified callers. Failures are logged and never
// fail the download.
func (h *Handler) archive(c *gin.Context, kind archive.Kind, templateID, title string, pdf []byte) {
	userID := middleware.UserIDFromContext(c)
	if h.Archive == nil || userID == "" {
		return
	}
	doc, err := h.Archive.Save(c.Request.Context(), archive.SaveInput{
		UserID:     userID,
		Kind:       kind,
		TemplateID: templateID,
		Title:      title,
		PDF:        pdf,
	})
	if err != nil {
		telemetry.Warn("archive.save_failed", map[string]any{
			"kind":    string(kind),
			"user_id": userID,
			"error":   err,
		})
		return
	}
	c.Set(middleware.DocumentIDKey, doc.ID)
	c.Header("X-Document-Id", doc.ID)
}

func (h *Handler) registry() render.Registry {
	if h.Gen != nil && h.Gen.Templates != nil {
		return h.Gen.Templates
	}
	return render.Templates
}

func (h *Handler) uploadDir() string {
	if strings.TrimSpace(h.UploadDir) == "" {
		return "uploads"
	}
	return h.UploadDir
}

func removeUpload(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		telemetry.Warn("upload.cleanup_failed", map[string]any{
			"path":  path,
			"error": err,
		})
	}
}
