// Package router provides stateless team generation routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/team_generator/internal/generator"
	"github.com/festy23/team_generator/internal/generator/handler"
)

// RegisterRoutes registers /teams routes.
func RegisterRoutes(r *gin.Engine, gen *generator.Generator, logger *zap.SugaredLogger) {
	h := handler.New(gen, logger)

	r.POST("/teams/validate", h.Validate)
	r.POST("/teams/generate", h.Generate)
}
