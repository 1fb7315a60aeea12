// Package repository provides data access layer for roster module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	teamModel "github.com/festy23/team_generator/internal/generator/model"
	rosterModel "github.com/festy23/team_generator/internal/roster/model"
)

// Repository defines the interface for roster data access operations.
type Repository interface {
	// Create creates a new empty roster.
	Create(ctx context.Context) (*rosterModel.Roster, error)

	// GetByID finds roster by roster_id.
	GetByID(ctx context.Context, rosterID string) (*rosterModel.Roster, error)

	// GetByIDForUpdate finds roster by roster_id and locks its row until the
	// surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, rosterID string) (*rosterModel.Roster, error)

	// UpdateState stores the team count and generated flag.
	UpdateState(ctx context.Context, rosterID string, teamCount int, isGenerated bool) error

	// ListNames returns roster names in entry order.
	ListNames(ctx context.Context, rosterID string) ([]string, error)

	// AddName appends a name to the roster.
	AddName(ctx context.Context, rosterID, name string) error

	// RemoveName deletes a name from the roster. Missing names are ignored.
	RemoveName(ctx context.Context, rosterID, name string) error

	// ClearNames deletes every name of the roster.
	ClearNames(ctx context.Context, rosterID string) error

	// SaveTeams replaces the stored teams of the roster.
	SaveTeams(ctx context.Context, rosterID string, teams []teamModel.Team) error

	// ListTeams rebuilds teamCount teams from stored assignments.
	ListTeams(ctx context.Context, rosterID string, teamCount int) ([]teamModel.Team, error)

	// ClearTeams deletes the stored teams of the roster.
	ClearTeams(ctx context.Context, rosterID string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new roster repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new empty roster.
func (r *repository) Create(ctx context.Context) (*rosterModel.Roster, error) {
	now := time.Now()
	roster := &rosterModel.Roster{
		RosterID:  uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.WithContext(ctx).Create(roster).Error; err != nil {
		return nil, err
	}

	return roster, nil
}

// GetByID finds roster by roster_id.
func (r *repository) GetByID(ctx context.Context, rosterID string) (*rosterModel.Roster, error) {
	var roster rosterModel.Roster
	err := r.db.WithContext(ctx).
		Where("roster_id = ?", rosterID).
		First(&roster).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rosterModel.ErrRosterNotFound
		}
		return nil, err
	}

	return &roster, nil
}

// GetByIDForUpdate finds roster by roster_id with SELECT ... FOR UPDATE.
// SQLite has no row locks and serializes writers instead.
func (r *repository) GetByIDForUpdate(ctx context.Context, rosterID string) (*rosterModel.Roster, error) {
	var roster rosterModel.Roster
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("roster_id = ?", rosterID).
		First(&roster).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rosterModel.ErrRosterNotFound
		}
		return nil, err
	}

	return &roster, nil
}

// UpdateState stores the team count and generated flag.
func (r *repository) UpdateState(ctx context.Context, rosterID string, teamCount int, isGenerated bool) error {
	result := r.db.WithContext(ctx).
		Model(&rosterModel.Roster{}).
		Where("roster_id = ?", rosterID).
		Updates(map[string]interface{}{
			"team_count":   teamCount,
			"is_generated": isGenerated,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return rosterModel.ErrRosterNotFound
	}

	return nil
}

// ListNames returns roster names in entry order.
func (r *repository) ListNames(ctx context.Context, rosterID string) ([]string, error) {
	var names []string

	err := r.db.WithContext(ctx).
		Model(&rosterModel.RosterName{}).
		Where("roster_id = ?", rosterID).
		Order("position ASC").
		Pluck("name", &names).Error

	if err != nil {
		return nil, err
	}

	if names == nil {
		return []string{}, nil
	}

	return names, nil
}

// AddName appends a name to the roster.
func (r *repository) AddName(ctx context.Context, rosterID, name string) error {
	var exists int64
	err := r.db.WithContext(ctx).
		Model(&rosterModel.RosterName{}).
		Where("roster_id = ? AND name = ?", rosterID, name).
		Count(&exists).Error
	if err != nil {
		return err
	}
	if exists > 0 {
		return rosterModel.ErrDuplicateName
	}

	var last int
	err = r.db.WithContext(ctx).
		Model(&rosterModel.RosterName{}).
		Where("roster_id = ?", rosterID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&last).Error
	if err != nil {
		return err
	}

	entry := &rosterModel.RosterName{
		RosterID:  rosterID,
		Name:      name,
		Position:  last + 1,
		CreatedAt: time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isDuplicateError(err) {
			return rosterModel.ErrDuplicateName
		}
		return err
	}

	return nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// RemoveName deletes a name from the roster. Missing names are ignored.
func (r *repository) RemoveName(ctx context.Context, rosterID, name string) error {
	return r.db.WithContext(ctx).
		Where("roster_id = ? AND name = ?", rosterID, name).
		Delete(&rosterModel.RosterName{}).Error
}

// ClearNames deletes every name of the roster.
func (r *repository) ClearNames(ctx context.Context, rosterID string) error {
	return r.db.WithContext(ctx).
		Where("roster_id = ?", rosterID).
		Delete(&rosterModel.RosterName{}).Error
}

// SaveTeams replaces the stored teams of the roster.
func (r *repository) SaveTeams(ctx context.Context, rosterID string, teams []teamModel.Team) error {
	if err := r.ClearTeams(ctx, rosterID); err != nil {
		return err
	}

	var rows []rosterModel.Assignment
	for _, team := range teams {
		for position, member := range team.Members {
			rows = append(rows, rosterModel.Assignment{
				RosterID:   rosterID,
				TeamID:     team.ID,
				Position:   position,
				MemberName: member,
			})
		}
	}

	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

// ListTeams rebuilds teamCount teams from stored assignments.
func (r *repository) ListTeams(ctx context.Context, rosterID string, teamCount int) ([]teamModel.Team, error) {
	if teamCount <= 0 {
		return []teamModel.Team{}, nil
	}

	var rows []rosterModel.Assignment
	err := r.db.WithContext(ctx).
		Where("roster_id = ?", rosterID).
		Order("team_id ASC, position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	teams := make([]teamModel.Team, teamCount)
	for k := range teams {
		teams[k] = teamModel.NewTeam(k + 1)
	}

	for _, row := range rows {
		if row.TeamID < 1 || row.TeamID > teamCount {
			continue
		}
		teams[row.TeamID-1].Members = append(teams[row.TeamID-1].Members, row.MemberName)
	}

	return teams, nil
}

// ClearTeams deletes the stored teams of the roster.
func (r *repository) ClearTeams(ctx context.Context, rosterID string) error {
	return r.db.WithContext(ctx).
		Where("roster_id = ?", rosterID).
		Delete(&rosterModel.Assignment{}).Error
}
