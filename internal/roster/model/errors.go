package model

import "errors"

var (
	// ErrRosterNotFound indicates that the requested roster does not exist.
	ErrRosterNotFound = errors.New("roster not found")
	// ErrInvalidRosterID indicates that the roster id is empty.
	ErrInvalidRosterID = errors.New("invalid roster id")
	// ErrEmptyName indicates that the name is empty after trimming.
	ErrEmptyName = errors.New("name is required")
	// ErrNameTooLong indicates that the name exceeds MaxNameLength characters.
	ErrNameTooLong = errors.New("name must be at most 255 characters")
	// ErrDuplicateName indicates that the name is already in the roster.
	ErrDuplicateName = errors.New("this name has already been added")
)
