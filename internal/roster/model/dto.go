package model

import teamModel "github.com/festy23/team_generator/internal/generator/model"

// RosterRequest identifies a roster.
type RosterRequest struct {
	RosterID string `json:"roster_id" binding:"required"`
}

// NameRequest adds or removes a name.
type NameRequest struct {
	RosterID string `json:"roster_id" binding:"required"`
	Name     string `json:"name"`
}

// GenerateRequest asks for teams using the raw team count text from the input field.
type GenerateRequest struct {
	RosterID  string `json:"roster_id" binding:"required"`
	TeamCount string `json:"team_count"`
}

// RosterResponse is the full view of a roster.
type RosterResponse struct {
	RosterID    string           `json:"roster_id"`
	Names       []string         `json:"names"`
	TeamCount   int              `json:"team_count"`
	Teams       []teamModel.Team `json:"teams"`
	IsGenerated bool             `json:"is_generated"`
}
