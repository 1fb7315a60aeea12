// Package model provides domain models and DTOs for the team generator.
package model

import "fmt"

// Team is one generated group of names.
type Team struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// TeamName returns the display label for the team with the given 1-based id.
func TeamName(id int) string {
	return fmt.Sprintf("Team %d", id)
}

// NewTeam creates an empty team with the given 1-based id.
func NewTeam(id int) Team {
	return Team{
		ID:      id,
		Name:    TeamName(id),
		Members: []string{},
	}
}

// Size returns the number of members in the team.
func (t Team) Size() int {
	return len(t.Members)
}
