package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		Error(c, http.StatusBadRequest, "validation_error", "Missing required field: name", gin.H{"field": "name"})
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/fail", nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "validation_error" || body.Error.Message != "Missing required field: name" {
		t.Fatalf("unexpected envelope %+v", body)
	}
}

func TestPDFAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/pdf", func(c *gin.Context) {
		PDF(c, "resume.pdf", []byte("%PDF-1.3"))
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/pdf", nil))

	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != `attachment; filename="resume.pdf"` {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if resp.Body.String() != "%PDF-1.3" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}
