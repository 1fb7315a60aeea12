// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/team_generator/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetRosterStatistics handles GET /statistics/rosters request.
// @Summary Get roster statistics
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.RosterStatisticsResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/rosters [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetRosterStatistics(c *gin.Context) {
	resp, err := h.service.GetRosterStatistics(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting roster statistics", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTeamSizes handles GET /statistics/teams request.
// @Summary Get generated team size distribution
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.TeamSizesResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeamSizes(c *gin.Context) {
	resp, err := h.service.GetTeamSizes(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting team size statistics", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
