package models

import "time"

// BulletinFeed is one unread notification row, keyed by (user id, bulletin id).
type BulletinFeed struct {
	ID         string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     string    `bson:"user_id" json:"user_id"`
	BulletinID string    `bson:"bulletin_id" json:"bulletin_id"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// TaskFeed is one unread notification row, keyed by (user id, task id).
type TaskFeed struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string    `bson:"user_id" json:"user_id"`
	TaskID    string    `bson:"task_id" json:"task_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
