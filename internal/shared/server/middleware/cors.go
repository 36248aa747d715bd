package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var corsStaticHeaders = map[string]string{
	"Access-Control-Allow-Methods":  "GET,POST,OPTIONS",
	"Access-Control-Allow-Headers":  "Content-Type, Authorization, X-Guest-Id, X-Request-Id",
	"Access-Control-Expose-Headers": "X-Request-Id, X-Document-Id, Content-Disposition",
	"Access-Control-Max-Age":        "600",
}

type corsPolicy struct {
	listed   map[string]struct{}
	wildcard bool
}

func newCORSPolicy(allowedOrigins []string) corsPolicy {
	p := corsPolicy{listed: make(map[string]struct{})}
	for _, o := range allowedOrigins {
		switch trimmed := strings.TrimSpace(o); trimmed {
		case "":
		case "*":
			p.wildcard = true
		default:
			p.listed[strings.TrimRight(trimmed, "/")] = struct{}{}
		}
	}
	return p
}

// allow reports whether origin may read responses and whether credentials
// may accompany the request. Credentials are only granted to listed origins.
func (p corsPolicy) allow(origin string) (allowed, credentials bool) {
	if _, ok := p.listed[origin]; ok {
		return true, true
	}
	return p.wildcard, false
}

// CORS sets CORS headers and answers preflight requests. An origin list
// containing "*" reflects any origin without credentials.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	policy := newCORSPolicy(allowedOrigins)

	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			if allowed, credentials := policy.allow(origin); allowed {
				h := c.Writer.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
				if credentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				for k, v := range corsStaticHeaders {
					h.Set(k, v)
				}
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
