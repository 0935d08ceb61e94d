package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vote is an anonymous upvote on a post, keyed by (post_id, client_id).
// The toggle logic keeps at most one live vote per pair; there is no store
// level uniqueness constraint, so concurrent toggles can race.
type Vote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    string             `bson:"post_id" json:"post_id"`
	ClientID  string             `bson:"client_id" json:"client_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// VoteToggle is the toggle request payload.
type VoteToggle struct {
	PostID   string `json:"post_id" binding:"required"`
	ClientID string `json:"client_id" binding:"required"`
}
