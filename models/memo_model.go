package models

import "time"

// Memo collection scopes. Every team and every project owns exactly one
// collection.
const (
	MemoScopeTeam    = "team"
	MemoScopeProject = "project"
)

type MemoCollection struct {
	ID      string `bson:"_id,omitempty" json:"id,omitempty"`
	Scope   string `bson:"scope" json:"scope"`
	OwnerID string `bson:"owner_id" json:"owner_id"`
}

type Memo struct {
	ID           string    `bson:"_id,omitempty" json:"id,omitempty"`
	CollectionID string    `bson:"collection_id" json:"collection_id"`
	Title        string    `bson:"title" json:"title"`
	Body         string    `bson:"body" json:"body"`
	UploaderID   string    `bson:"uploader_id" json:"uploader_id"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
