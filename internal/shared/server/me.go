package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireflow-backend/internal/shared/server/middleware"
	"hireflow-backend/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

func meHandler(c *gin.Context) {
	ownerKey := middleware.OwnerKeyFromContext(c)
	if ownerKey == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"ownerKey": ownerKey,
		"isGuest":  middleware.IsGuestFromContext(c),
	})
}
