// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_generator/internal/database/database"
)

const checkTimeout = 5 * time.Second

// CheckFunc reports whether a dependency is reachable.
type CheckFunc func(ctx context.Context) error

// Handler handles health check requests.
type Handler struct {
	check  CheckFunc
	logger *zap.SugaredLogger
}

// New creates a health handler that runs check on every request.
func New(check CheckFunc, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		check:  check,
		logger: logger,
	}
}

// NewForDB creates a health handler that pings db.
func NewForDB(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return New(func(ctx context.Context) error {
		return database.HealthCheck(ctx, db)
	}, logger)
}

// Response represents health check response.
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// RegisterRoutes registers GET /health.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	r.GET("/health", NewForDB(db, logger).Check)
}

// Check handles GET /health request.
//
//	@Summary		Health check
//	@Description	Reports service and database availability
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	Response
//	@Failure		503	{object}	Response
//	@Router			/health [get]
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	if err := h.check(ctx); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{
			Status:   "unhealthy",
			Database: "down",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Status:   "ok",
		Database: "up",
	})
}
