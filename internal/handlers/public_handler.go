package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

// PublicHandler serves the unauthenticated service endpoints.
type PublicHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPublicHandler(db *gorm.DB, log *zap.Logger) *PublicHandler {
	return &PublicHandler{db: db, log: log}
}

// Root godoc
// @Summary  Greeting
// @Tags     system
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   / [get]
func (h *PublicHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hello": "world"})
}

// Health godoc
// @Summary  Database reachability
// @Tags     system
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  503 {object} map[string]string
// @Router   /health [get]
func (h *PublicHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
