// Package model provides data transfer objects for statistics module.
package model

// RosterStatistics summarizes stored rosters.
type RosterStatistics struct {
	TotalRosters          int     `json:"total_rosters"`
	GeneratedRosters      int     `json:"generated_rosters"`
	TotalNames            int     `json:"total_names"`
	AverageNamesPerRoster float64 `json:"average_names_per_roster"`
	AverageTeamCount      float64 `json:"average_team_count"`
}

// RosterStatisticsResponse represents response for roster statistics.
type RosterStatisticsResponse struct {
	Statistics RosterStatistics `json:"statistics"`
}

// TeamSizeStatistics counts generated teams of one size.
type TeamSizeStatistics struct {
	TeamSize int `json:"team_size"`
	Teams    int `json:"teams"`
}

// TeamSizesResponse represents response for team size statistics.
type TeamSizesResponse struct {
	TeamSizes  []TeamSizeStatistics `json:"team_sizes"`
	TotalTeams int                  `json:"total_teams"`
}
