package models

import "time"

type Team struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string    `bson:"name" json:"name"`
	AdminID   string    `bson:"admin_id" json:"admin_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// TeamMembership joins a user to a team. The admin holds a membership row
// like everyone else; admin-ness is derived from Team.AdminID, never stored
// here.
type TeamMembership struct {
	ID          string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string    `bson:"user_id" json:"user_id"`
	TeamID      string    `bson:"team_id" json:"team_id"`
	AccessCount int64     `bson:"access_count" json:"access_count"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
