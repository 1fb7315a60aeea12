// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_generator/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetRosterStatistics aggregates roster and name counts.
	GetRosterStatistics(ctx context.Context) (*model.RosterStatistics, error)

	// GetTeamSizeStatistics counts the teams of generated rosters by size.
	GetTeamSizeStatistics(ctx context.Context) ([]model.TeamSizeStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetRosterStatistics aggregates roster and name counts.
func (r *repository) GetRosterStatistics(ctx context.Context) (*model.RosterStatistics, error) {
	r.logger.Debugw("GetRosterStatistics called")

	var result struct {
		TotalRosters     int64   `gorm:"column:total_rosters"`
		GeneratedRosters int64   `gorm:"column:generated_rosters"`
		TotalNames       int64   `gorm:"column:total_names"`
		AverageNames     float64 `gorm:"column:avg_names"`
		AverageTeamCount float64 `gorm:"column:avg_team_count"`
	}

	err := r.db.WithContext(ctx).
		Table("rosters").
		Select(`
			COUNT(*) as total_rosters,
			COALESCE(SUM(CASE WHEN rosters.is_generated = ? THEN 1 ELSE 0 END), 0) as generated_rosters,
			COALESCE(SUM(COALESCE(name_counts.name_count, 0)), 0) as total_names,
			COALESCE(AVG(CAST(COALESCE(name_counts.name_count, 0) AS REAL)), 0) as avg_names,
			COALESCE(AVG(CASE WHEN rosters.is_generated = ? THEN CAST(rosters.team_count AS REAL) END), 0) as avg_team_count
		`, true, true).
		Joins(`
			LEFT JOIN (
				SELECT roster_id, COUNT(*) as name_count
				FROM roster_names
				GROUP BY roster_id
			) name_counts ON rosters.roster_id = name_counts.roster_id
		`).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetRosterStatistics database error", "error", err)
		return nil, err
	}

	stats := &model.RosterStatistics{
		TotalRosters:          int(result.TotalRosters),
		GeneratedRosters:      int(result.GeneratedRosters),
		TotalNames:            int(result.TotalNames),
		AverageNamesPerRoster: result.AverageNames,
		AverageTeamCount:      result.AverageTeamCount,
	}

	r.logger.Debugw("GetRosterStatistics completed", "total_rosters", stats.TotalRosters)
	return stats, nil
}

// GetTeamSizeStatistics counts the teams of generated rosters by size.
func (r *repository) GetTeamSizeStatistics(ctx context.Context) ([]model.TeamSizeStatistics, error) {
	r.logger.Debugw("GetTeamSizeStatistics called")

	var stats []model.TeamSizeStatistics

	sizes := r.db.
		Table("roster_assignments").
		Select("roster_assignments.roster_id, roster_assignments.team_id, COUNT(*) as team_size").
		Joins("JOIN rosters ON rosters.roster_id = roster_assignments.roster_id").
		Where("rosters.is_generated = ?", true).
		Group("roster_assignments.roster_id, roster_assignments.team_id")

	err := r.db.WithContext(ctx).
		Table("(?) as sizes", sizes).
		Select("team_size, COUNT(*) as teams").
		Group("team_size").
		Order("team_size ASC").
		Scan(&stats).Error

	if err != nil {
		r.logger.Errorw("GetTeamSizeStatistics database error", "error", err)
		return nil, err
	}

	if stats == nil {
		stats = []model.TeamSizeStatistics{}
	}

	r.logger.Debugw("GetTeamSizeStatistics completed", "sizes", len(stats))
	return stats, nil
}
