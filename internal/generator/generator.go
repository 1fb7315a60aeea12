// Package generator validates team generation requests and deals names into
// randomly shuffled, evenly sized teams.
package generator

import (
	"github.com/festy23/team_generator/internal/generator/model"
)

// Generator shuffles names with an injectable random source.
type Generator struct {
	src Source
}

// New creates a generator drawing randomness from src.
// A nil src falls back to the process-wide source.
func New(src Source) *Generator {
	if src == nil {
		src = globalSource
	}
	return &Generator{src: src}
}

// NewSeeded creates a generator whose output is reproducible for a given seed.
func NewSeeded(seed int64) *Generator {
	return New(NewSeededSource(seed))
}

var defaultGenerator = New(globalSource)

// Default returns the generator backed by the process-wide random source.
func Default() *Generator {
	return defaultGenerator
}

// Validate checks names and teamCount. The first failing rule wins.
func Validate(names []string, teamCount int) model.ValidationResult {
	if len(names) == 0 {
		return model.Invalid(model.ErrNoNames)
	}
	if teamCount <= 0 {
		return model.Invalid(model.ErrInvalidTeamCount)
	}
	if teamCount > len(names) {
		return model.Invalid(model.ErrTeamCountExceedsNames)
	}
	return model.Valid()
}

// Generate deals names into teamCount teams using the default generator.
func Generate(names []string, teamCount int) []model.Team {
	return defaultGenerator.Generate(names, teamCount)
}

// Validate is the same as the package-level Validate.
func (g *Generator) Validate(names []string, teamCount int) model.ValidationResult {
	return Validate(names, teamCount)
}

// Generate shuffles a copy of names and deals them round-robin into teamCount teams.
// Teams with lower ids receive the extra members when the split is uneven.
// Empty names or a non-positive teamCount yield an empty slice.
func (g *Generator) Generate(names []string, teamCount int) []model.Team {
	if len(names) == 0 || teamCount <= 0 {
		return []model.Team{}
	}

	shuffled := g.Shuffle(names)

	teams := make([]model.Team, teamCount)
	for k := range teams {
		teams[k] = model.NewTeam(k + 1)
	}

	for index, name := range shuffled {
		k := index % teamCount
		teams[k].Members = append(teams[k].Members, name)
	}

	return teams
}

// Shuffle returns a uniformly random permutation of names (Fisher-Yates).
// The input slice is left untouched.
func (g *Generator) Shuffle(names []string) []string {
	shuffled := make([]string, len(names))
	copy(shuffled, names)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := g.src.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}
