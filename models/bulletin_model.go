package models

import "time"

type Bulletin struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	BoardID   string    `bson:"board_id" json:"board_id"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
