package models

import "time"

type Task struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	BoardID   string    `bson:"board_id" json:"board_id"`
	Title     string    `bson:"title" json:"title"`
	LeaderID  string    `bson:"leader_id" json:"leader_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Subtask is keyed by (task id, title) within its task.
type Subtask struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	TaskID    string    `bson:"task_id" json:"task_id"`
	Title     string    `bson:"title" json:"title"`
	Done      bool      `bson:"done" json:"done"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Assignment names a principal user for one subtask.
type Assignment struct {
	ID           string    `bson:"_id,omitempty" json:"id,omitempty"`
	TaskID       string    `bson:"task_id" json:"task_id"`
	SubtaskTitle string    `bson:"subtask_title" json:"subtask_title"`
	UserID       string    `bson:"user_id" json:"user_id"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
