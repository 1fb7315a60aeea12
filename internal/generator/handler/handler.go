// Package handler provides HTTP handlers for stateless team generation.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/team_generator/internal/generator"
	"github.com/festy23/team_generator/internal/generator/model"
)

// Handler handles HTTP requests for /teams endpoints.
type Handler struct {
	gen    *generator.Generator
	logger *zap.SugaredLogger
}

// New creates a new generator handler instance.
func New(gen *generator.Generator, logger *zap.SugaredLogger) *Handler {
	return &Handler{gen: gen, logger: logger}
}

// Validate handles POST /teams/validate request.
// @Summary Check names and team count
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body model.GenerateRequest true "Request"
// @Success 200 {object} model.ValidationResult
// @Failure 400 {object} ErrorResponse "Malformed body (INVALID_REQUEST)"
// @Router /teams/validate [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Validate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, h.gen.Validate(req.Names, req.TeamCount))
}

// Generate handles POST /teams/generate request.
// @Summary Split names into random balanced teams
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body model.GenerateRequest true "Request"
// @Success 200 {object} model.GenerateResponse
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST, INVALID_INPUT)"
// @Router /teams/generate [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Generate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	result := h.gen.Validate(req.Names, req.TeamCount)
	if !result.IsValid {
		h.logger.Debugw("rejected generate request",
			"names", len(req.Names),
			"team_count", req.TeamCount,
			"reason", result.ErrorMessage,
		)
		errorResponse(c, "INVALID_INPUT", result.ErrorMessage, http.StatusBadRequest)
		return
	}

	teams := h.gen.Generate(req.Names, req.TeamCount)
	h.logger.Infow("teams generated", "names", len(req.Names), "team_count", len(teams))

	c.JSON(http.StatusOK, model.GenerateResponse{Teams: teams})
}
