package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a submitted product idea, the root entity of the board.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Link        *string            `bson:"link" json:"link"`
	Tags        []string           `bson:"tags" json:"tags"`
	AuthorName  *string            `bson:"author_name" json:"author_name"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// PostCreate is the creation request payload.
type PostCreate struct {
	Title       string   `json:"title" binding:"required,min=1"`
	Description string   `json:"description" binding:"required"`
	Link        *string  `json:"link"`
	Tags        []string `json:"tags"`
	AuthorName  *string  `json:"author_name"`
}
