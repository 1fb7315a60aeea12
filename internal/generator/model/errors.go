package model

import "errors"

var (
	// ErrNoNames indicates that no names were supplied.
	ErrNoNames = errors.New("at least one name required")
	// ErrInvalidTeamCount indicates that the team count is zero or negative.
	ErrInvalidTeamCount = errors.New("team count must be greater than 0")
	// ErrTeamCountExceedsNames indicates that more teams than names were requested.
	ErrTeamCountExceedsNames = errors.New("team count cannot exceed number of names")
)
