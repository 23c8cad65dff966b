package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"restaurant-app-api/pkg/cache"
	"restaurant-app-api/pkg/database"
	"restaurant-app-api/pkg/logger"
)

type SystemHandler struct {
	store *database.Store
}

func NewSystemHandler(store *database.Store) *SystemHandler {
	return &SystemHandler{store: store}
}

// Root godoc
// @Summary Liveness message
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant API running"})
}

// TestDatabase godoc
// @Summary Store connectivity diagnostic
// @Description Reports backend and document-store status, including the first collection names
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (h *SystemHandler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store.Available() {
		response["database"] = "✅ Available"
		if os.Getenv("DATABASE_URL") != "" {
			response["database_url"] = "✅ Set"
		} else {
			response["database_url"] = "❌ Not Set"
		}
		response["database_name"] = h.store.Name()
		response["connection_status"] = "Connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		collections, err := h.store.ListCollectionNames(ctx)
		if err != nil {
			msg := err.Error()
			if len(msg) > 50 {
				msg = msg[:50]
			}
			response["database"] = fmt.Sprintf("⚠️  Connected but Error: %s", msg)
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			response["collections"] = collections
			response["database"] = "✅ Connected & Working"
		}
	}

	c.JSON(http.StatusOK, response)
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.GlobalLogger.Printf("MongoDB ping failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
		return
	}

	if cache.Enabled() {
		if err := cache.Ping(ctx); err != nil {
			logger.GlobalLogger.Printf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
