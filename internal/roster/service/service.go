// Package service provides business logic layer for roster module.
package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_generator/internal/generator"
	teamModel "github.com/festy23/team_generator/internal/generator/model"
	rosterModel "github.com/festy23/team_generator/internal/roster/model"
	"github.com/festy23/team_generator/internal/roster/repository"
)

// Service defines the interface for roster business logic operations.
type Service interface {
	// CreateRoster starts a new empty roster.
	CreateRoster(ctx context.Context) (*rosterModel.RosterResponse, error)

	// GetRoster returns the current state of a roster.
	GetRoster(ctx context.Context, rosterID string) (*rosterModel.RosterResponse, error)

	// AddName trims and appends a name, rejecting empty, overlong and duplicate names.
	AddName(ctx context.Context, req *rosterModel.NameRequest) (*rosterModel.RosterResponse, error)

	// RemoveName drops a name from the roster.
	RemoveName(ctx context.Context, req *rosterModel.NameRequest) (*rosterModel.RosterResponse, error)

	// Generate validates the roster and replaces its teams with a fresh draw.
	Generate(ctx context.Context, req *rosterModel.GenerateRequest) (*rosterModel.RosterResponse, error)

	// Reset clears names, team count and teams.
	Reset(ctx context.Context, rosterID string) (*rosterModel.RosterResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	gen    *generator.Generator
	logger *zap.SugaredLogger
}

// New creates a new roster service instance.
func New(repo repository.Repository, db *gorm.DB, gen *generator.Generator, logger *zap.SugaredLogger) Service {
	if gen == nil {
		gen = generator.Default()
	}
	return &service{
		repo:   repo,
		db:     db,
		gen:    gen,
		logger: logger,
	}
}

// ParseTeamCount reads the leading base-10 integer of the trimmed text,
// with an optional sign: "3.5" and "3 teams" give 3.
// Text without leading digits yields 0, which fails validation.
// Values beyond the int range saturate.
func ParseTeamCount(text string) int {
	text = strings.TrimSpace(text)

	end := 0
	if end < len(text) && (text[end] == '+' || text[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.ParseInt(text[:end], 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return int(n)
}

// CreateRoster starts a new empty roster.
func (s *service) CreateRoster(ctx context.Context) (*rosterModel.RosterResponse, error) {
	roster, err := s.repo.Create(ctx)
	if err != nil {
		s.logger.Errorw("CreateRoster failed", "error", err)
		return nil, err
	}

	s.logger.Infow("roster created", "roster_id", roster.RosterID)
	return &rosterModel.RosterResponse{
		RosterID: roster.RosterID,
		Names:    []string{},
		Teams:    []teamModel.Team{},
	}, nil
}

// GetRoster returns the current state of a roster.
func (s *service) GetRoster(ctx context.Context, rosterID string) (*rosterModel.RosterResponse, error) {
	if rosterID == "" {
		return nil, rosterModel.ErrInvalidRosterID
	}

	return s.load(ctx, s.repo, rosterID)
}

// AddName trims and appends a name, rejecting empty, overlong and duplicate names.
func (s *service) AddName(ctx context.Context, req *rosterModel.NameRequest) (*rosterModel.RosterResponse, error) {
	if req.RosterID == "" {
		return nil, rosterModel.ErrInvalidRosterID
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, rosterModel.ErrEmptyName
	}
	if utf8.RuneCountInString(name) > rosterModel.MaxNameLength {
		return nil, rosterModel.ErrNameTooLong
	}

	var result *rosterModel.RosterResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		// The row lock serializes position assignment for concurrent adds.
		if _, err := txRepo.GetByIDForUpdate(ctx, req.RosterID); err != nil {
			return err
		}

		if err := txRepo.AddName(ctx, req.RosterID, name); err != nil {
			return err
		}

		var err error
		result, err = s.load(ctx, txRepo, req.RosterID)
		return err
	})

	if err != nil {
		return nil, err
	}

	s.logger.Debugw("name added", "roster_id", req.RosterID, "names", len(result.Names))
	return result, nil
}

// RemoveName drops a name from the roster.
func (s *service) RemoveName(ctx context.Context, req *rosterModel.NameRequest) (*rosterModel.RosterResponse, error) {
	if req.RosterID == "" {
		return nil, rosterModel.ErrInvalidRosterID
	}

	var result *rosterModel.RosterResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if _, err := txRepo.GetByIDForUpdate(ctx, req.RosterID); err != nil {
			return err
		}

		if err := txRepo.RemoveName(ctx, req.RosterID, req.Name); err != nil {
			return err
		}

		var err error
		result, err = s.load(ctx, txRepo, req.RosterID)
		return err
	})

	if err != nil {
		return nil, err
	}

	s.logger.Debugw("name removed", "roster_id", req.RosterID, "names", len(result.Names))
	return result, nil
}

// Generate validates the roster and replaces its teams with a fresh draw.
// Validation failures are returned as the generator's sentinel errors.
func (s *service) Generate(ctx context.Context, req *rosterModel.GenerateRequest) (*rosterModel.RosterResponse, error) {
	if req.RosterID == "" {
		return nil, rosterModel.ErrInvalidRosterID
	}

	teamCount := ParseTeamCount(req.TeamCount)

	var result *rosterModel.RosterResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if _, err := txRepo.GetByIDForUpdate(ctx, req.RosterID); err != nil {
			return err
		}

		names, err := txRepo.ListNames(ctx, req.RosterID)
		if err != nil {
			return err
		}

		validation := s.gen.Validate(names, teamCount)
		if !validation.IsValid {
			return validation.Err()
		}

		teams := s.gen.Generate(names, teamCount)
		if err := txRepo.SaveTeams(ctx, req.RosterID, teams); err != nil {
			return err
		}

		if err := txRepo.UpdateState(ctx, req.RosterID, teamCount, true); err != nil {
			return err
		}

		result = &rosterModel.RosterResponse{
			RosterID:    req.RosterID,
			Names:       names,
			TeamCount:   teamCount,
			Teams:       teams,
			IsGenerated: true,
		}
		return nil
	})

	if err != nil {
		s.logger.Debugw("Generate rejected", "roster_id", req.RosterID, "team_count", req.TeamCount, "error", err)
		return nil, err
	}

	s.logger.Infow("teams generated", "roster_id", req.RosterID, "names", len(result.Names), "team_count", teamCount)
	return result, nil
}

// Reset clears names, team count and teams.
func (s *service) Reset(ctx context.Context, rosterID string) (*rosterModel.RosterResponse, error) {
	if rosterID == "" {
		return nil, rosterModel.ErrInvalidRosterID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if _, err := txRepo.GetByIDForUpdate(ctx, rosterID); err != nil {
			return err
		}
		if err := txRepo.ClearTeams(ctx, rosterID); err != nil {
			return err
		}
		if err := txRepo.ClearNames(ctx, rosterID); err != nil {
			return err
		}
		return txRepo.UpdateState(ctx, rosterID, 0, false)
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("roster reset", "roster_id", rosterID)
	return &rosterModel.RosterResponse{
		RosterID: rosterID,
		Names:    []string{},
		Teams:    []teamModel.Team{},
	}, nil
}

// load assembles the response view of a roster using repo.
func (s *service) load(ctx context.Context, repo repository.Repository, rosterID string) (*rosterModel.RosterResponse, error) {
	roster, err := repo.GetByID(ctx, rosterID)
	if err != nil {
		return nil, err
	}

	names, err := repo.ListNames(ctx, rosterID)
	if err != nil {
		return nil, err
	}

	teamCount := 0
	if roster.IsGenerated {
		teamCount = roster.TeamCount
	}
	teams, err := repo.ListTeams(ctx, rosterID, teamCount)
	if err != nil {
		return nil, err
	}

	return &rosterModel.RosterResponse{
		RosterID:    roster.RosterID,
		Names:       names,
		TeamCount:   roster.TeamCount,
		Teams:       teams,
		IsGenerated: roster.IsGenerated,
	}, nil
}
