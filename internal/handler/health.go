package handler

import (
	"context"
	"net/http"
	"time"

	"personas/internal/infra"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health returns a JSON health check response.
// Checks DB connectivity; never exposes credentials or internals.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		if infra.Ping(ctx, db) != nil {
			dbStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok": status == http.StatusOK,
			"db": dbStatus,
		})
	}
}

// Root describes the service at the process root.
func Root(title, description, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       title,
			"description": description,
			"version":     version,
		})
	}
}
