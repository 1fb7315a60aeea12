// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/team_generator/internal/statistics/model"
	"github.com/festy23/team_generator/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetRosterStatistics returns aggregate roster statistics.
	GetRosterStatistics(ctx context.Context) (*model.RosterStatisticsResponse, error)

	// GetTeamSizes returns the size distribution of generated teams.
	GetTeamSizes(ctx context.Context) (*model.TeamSizesResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetRosterStatistics returns aggregate roster statistics.
func (s *service) GetRosterStatistics(ctx context.Context) (*model.RosterStatisticsResponse, error) {
	s.logger.Debugw("GetRosterStatistics called")

	stats, err := s.repo.GetRosterStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetRosterStatistics failed", "error", err)
		return nil, err
	}

	s.logger.Infow("GetRosterStatistics completed", "total_rosters", stats.TotalRosters)
	return &model.RosterStatisticsResponse{
		Statistics: *stats,
	}, nil
}

// GetTeamSizes returns the size distribution of generated teams.
func (s *service) GetTeamSizes(ctx context.Context) (*model.TeamSizesResponse, error) {
	s.logger.Debugw("GetTeamSizes called")

	sizes, err := s.repo.GetTeamSizeStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetTeamSizes failed", "error", err)
		return nil, err
	}

	if sizes == nil {
		sizes = []model.TeamSizeStatistics{}
	}

	total := 0
	for _, size := range sizes {
		total += size.Teams
	}

	s.logger.Infow("GetTeamSizes completed", "total_teams", total)
	return &model.TeamSizesResponse{
		TeamSizes:  sizes,
		TotalTeams: total,
	}, nil
}
