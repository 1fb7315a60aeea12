// Package model provides domain models and DTOs for the roster module.
package model

import "time"

// MaxNameLength is the longest name, in characters, that fits the name columns.
const MaxNameLength = 255

// Roster holds the working state of one team generation session.
// Matches the rosters table schema.
type Roster struct {
	RosterID    string    `gorm:"primaryKey;column:roster_id;type:varchar(36)" json:"roster_id"`
	TeamCount   int       `gorm:"column:team_count;not null;default:0" json:"team_count"`
	IsGenerated bool      `gorm:"column:is_generated;not null;default:false" json:"is_generated"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Roster) TableName() string {
	return "rosters"
}

// RosterName is one entered name. Position keeps entry order.
type RosterName struct {
	RosterID  string    `gorm:"primaryKey;column:roster_id;type:varchar(36)"`
	Name      string    `gorm:"primaryKey;column:name;type:varchar(255)"`
	Position  int       `gorm:"column:position;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for GORM.
func (RosterName) TableName() string {
	return "roster_names"
}

// Assignment places one name at a position inside a generated team.
type Assignment struct {
	RosterID   string `gorm:"primaryKey;column:roster_id;type:varchar(36)"`
	TeamID     int    `gorm:"primaryKey;column:team_id"`
	Position   int    `gorm:"primaryKey;column:position"`
	MemberName string `gorm:"column:member_name;type:varchar(255);not null"`
}

// TableName specifies the table name for GORM.
func (Assignment) TableName() string {
	return "roster_assignments"
}
