package handlers

import (
	"net/http"

	"production-plan/internal/api/models"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName    = "Production Plan API"
	ServiceVersion = "1.0.0"
)

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Version handles GET /version
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, models.VersionInfo{Name: ServiceName, Version: ServiceVersion})
}
