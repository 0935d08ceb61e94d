package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a free-text reply attached to a post.
// PostID holds the referenced post's id as hex text; existence is validated
// at creation time, not enforced by the store.
type Comment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID     string             `bson:"post_id" json:"post_id"`
	AuthorName *string            `bson:"author_name" json:"author_name"`
	Content    string             `bson:"content" json:"content"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// CommentCreate is the creation request payload.
type CommentCreate struct {
	PostID     string  `json:"post_id" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	AuthorName *string `json:"author_name"`
}
