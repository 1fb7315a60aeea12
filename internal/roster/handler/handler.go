// Package handler provides HTTP handlers for roster endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/festy23/team_generator/internal/generator/model"
	rosterModel "github.com/festy23/team_generator/internal/roster/model"
	"github.com/festy23/team_generator/internal/roster/service"
)

// Handler handles HTTP requests for roster endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new roster handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateRoster handles POST /roster/create request.
// @Summary Start an empty roster
// @Tags Roster
// @Produce json
// @Success 201 {object} map[string]rosterModel.RosterResponse "Response wrapped in roster object"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /roster/create [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateRoster(c *gin.Context) {
	resp, err := h.service.CreateRoster(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error creating roster", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"roster": resp,
	})
}

// GetRoster handles GET /roster/get request.
// @Summary Get names, team count and generated teams of a roster
// @Tags Roster
// @Produce json
// @Param roster_id query string true "Roster ID"
// @Success 200 {object} rosterModel.RosterResponse
// @Failure 400 {object} ErrorResponse "Missing roster_id parameter"
// @Failure 404 {object} ErrorResponse "Roster not found"
// @Router /roster/get [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetRoster(c *gin.Context) {
	rosterID := c.Query("roster_id")
	if rosterID == "" {
		errorResponse(c, "INVALID_REQUEST", "roster_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetRoster(c.Request.Context(), rosterID)
	if err != nil {
		h.handleError(c, "error getting roster", rosterID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddName handles POST /roster/addName request.
// @Summary Add a name to a roster
// @Tags Roster
// @Accept json
// @Produce json
// @Param request body rosterModel.NameRequest true "Request"
// @Success 200 {object} rosterModel.RosterResponse
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST, DUPLICATE_NAME)"
// @Failure 404 {object} ErrorResponse "Roster not found"
// @Router /roster/addName [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) AddName(c *gin.Context) {
	var req rosterModel.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AddName(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "error adding name", req.RosterID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveName handles POST /roster/removeName request.
// @Summary Remove a name from a roster
// @Tags Roster
// @Accept json
// @Produce json
// @Param request body rosterModel.NameRequest true "Request"
// @Success 200 {object} rosterModel.RosterResponse
// @Failure 404 {object} ErrorResponse "Roster not found"
// @Router /roster/removeName [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RemoveName(c *gin.Context) {
	var req rosterModel.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.RemoveName(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "error removing name", req.RosterID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Generate handles POST /roster/generate request.
// @Summary Split the roster names into random balanced teams
// @Tags Roster
// @Accept json
// @Produce json
// @Param request body rosterModel.GenerateRequest true "Request"
// @Success 200 {object} rosterModel.RosterResponse
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST, INVALID_INPUT)"
// @Failure 404 {object} ErrorResponse "Roster not found"
// @Router /roster/generate [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Generate(c *gin.Context) {
	var req rosterModel.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "error generating teams", req.RosterID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Reset handles POST /roster/reset request.
// @Summary Clear a roster
// @Tags Roster
// @Accept json
// @Produce json
// @Param request body rosterModel.RosterRequest true "Request"
// @Success 200 {object} rosterModel.RosterResponse
// @Failure 404 {object} ErrorResponse "Roster not found"
// @Router /roster/reset [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Reset(c *gin.Context) {
	var req rosterModel.RosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Reset(c.Request.Context(), req.RosterID)
	if err != nil {
		h.handleError(c, "error resetting roster", req.RosterID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handleError maps service errors to API error responses.
func (h *Handler) handleError(c *gin.Context, msg, rosterID string, err error) {
	switch {
	case errors.Is(err, rosterModel.ErrRosterNotFound):
		notFoundResponse(c, "roster not found")
	case errors.Is(err, rosterModel.ErrInvalidRosterID):
		errorResponse(c, "INVALID_REQUEST", "roster_id is required", http.StatusBadRequest)
	case errors.Is(err, rosterModel.ErrEmptyName),
		errors.Is(err, rosterModel.ErrNameTooLong):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, rosterModel.ErrDuplicateName):
		errorResponse(c, "DUPLICATE_NAME", err.Error(), http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrNoNames),
		errors.Is(err, teamModel.ErrInvalidTeamCount),
		errors.Is(err, teamModel.ErrTeamCountExceedsNames):
		errorResponse(c, "INVALID_INPUT", err.Error(), http.StatusBadRequest)
	default:
		h.logger.Errorw(msg, "roster_id", rosterID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
