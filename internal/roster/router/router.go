// Package router provides roster module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_generator/internal/generator"
	"github.com/festy23/team_generator/internal/roster/handler"
	"github.com/festy23/team_generator/internal/roster/repository"
	"github.com/festy23/team_generator/internal/roster/service"
)

// RegisterRoutes registers roster module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, gen *generator.Generator, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, gen, logger)
	h := handler.New(svc, logger)

	r.POST("/roster/create", h.CreateRoster)
	r.GET("/roster/get", h.GetRoster)
	r.POST("/roster/addName", h.AddName)
	r.POST("/roster/removeName", h.RemoveName)
	r.POST("/roster/generate", h.Generate)
	r.POST("/roster/reset", h.Reset)
}
