package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log line.
const (
	TemplateKey   = "template"
	DocumentIDKey = "documentId"
	PDFBytesKey   = "pdfBytes"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		isGuest, _ := c.Get(isGuestKey)
		template, _ := c.Get(TemplateKey)
		documentID, _ := c.Get(DocumentIDKey)
		pdfBytes, _ := c.Get(PDFBytesKey)

		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"user_id":     UserIDFromContext(c),
			"is_guest":    isGuest,
			"template":    template,
			"document_id": documentID,
			"pdf_bytes":   pdfBytes,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
