package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/server/middleware"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/server/respond"
)

type meResponse struct {
	UserID string `json:"userId"`
	Guest  bool   `json:"guest"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
}

// registerMeRoutes attaches the /me endpoint, which echoes the identity the
// auth middleware resolved.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", func(c *gin.Context) {
		userID := middleware.UserIDFromContext(c)
		if userID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		respond.OK(c, meResponse{
			UserID: userID,
			Guest:  middleware.IsGuestFromContext(c),
			Email:  middleware.UserEmailFromContext(c),
			Name:   middleware.UserNameFromContext(c),
		})
	})
}
