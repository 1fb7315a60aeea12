// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/festy23/team_generator/internal/config"
	dbConfig "github.com/festy23/team_generator/internal/database/config"
	"github.com/festy23/team_generator/internal/database/database"
	"github.com/festy23/team_generator/internal/database/migrate"
	"github.com/festy23/team_generator/internal/generator"
	generatorRouter "github.com/festy23/team_generator/internal/generator/router"
	"github.com/festy23/team_generator/internal/health"
	"github.com/festy23/team_generator/internal/middleware"
	rosterRouter "github.com/festy23/team_generator/internal/roster/router"
	statisticsRouter "github.com/festy23/team_generator/internal/statistics/router"
	"github.com/festy23/team_generator/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "team generator: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dbCfg := dbConfig.LoadConfigFromEnv()
	if err := dbCfg.Validate(); err != nil {
		return fmt.Errorf("invalid database config: %w", err)
	}

	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)

	db, err := database.NewWithConfig(dbCfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Run(db, dbCfg.Driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Infow("database schema is up to date", "driver", dbCfg.Driver)

	gen := newGenerator(cfg.Generator, log)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      newRouter(db, gen, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Infow("server shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Infow("server stopped gracefully")
	return nil
}

// newGenerator returns a reproducible generator when GENERATOR_SEED is set.
func newGenerator(cfg appConfig.GeneratorConfig, log *zap.SugaredLogger) *generator.Generator {
	if cfg.IsSeeded() {
		log.Infow("using seeded team generator", "seed", cfg.Seed)
		return generator.NewSeeded(cfg.Seed)
	}
	return generator.Default()
}

// newRouter wires middleware and every route group.
func newRouter(db *gorm.DB, gen *generator.Generator, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))

	health.RegisterRoutes(r, db, log)
	generatorRouter.RegisterRoutes(r, gen, log)
	rosterRouter.RegisterRoutes(r, db, gen, log)
	statisticsRouter.RegisterRoutes(r, db, log)

	return r
}
