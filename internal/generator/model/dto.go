package model

// GenerateRequest represents a stateless validate or generate request.
type GenerateRequest struct {
	Names     []string `json:"names"`
	TeamCount int      `json:"team_count"`
}

// GenerateResponse represents the teams produced for a request.
type GenerateResponse struct {
	Teams []Team `json:"teams"`
}
