package models

import "time"

type Project struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	TeamID    string    `bson:"team_id" json:"team_id"`
	AdminID   string    `bson:"admin_id" json:"admin_id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ProjectMembership carries no role flag: the project admin is whoever
// matches Project.AdminID.
type ProjectMembership struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string    `bson:"user_id" json:"user_id"`
	ProjectID string    `bson:"project_id" json:"project_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type BulletinBoard struct {
	ID        string `bson:"_id,omitempty" json:"id,omitempty"`
	ProjectID string `bson:"project_id" json:"project_id"`
}

type TaskBoard struct {
	ID        string `bson:"_id,omitempty" json:"id,omitempty"`
	ProjectID string `bson:"project_id" json:"project_id"`
}
