package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Logical collection names.
const (
	CollPost    = "post"
	CollComment = "comment"
	CollVote    = "vote"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// Store is the document store contract the controllers depend on.
// A nil Store models the "database not configured" state: handlers check for
// it before touching any collection and answer with a server error.
type Store interface {
	InsertOne(ctx context.Context, coll string, doc interface{}) (primitive.ObjectID, error)
	Find(ctx context.Context, coll string, filter interface{}, opts ...*options.FindOptions) ([]bson.M, error)
	FindOne(ctx context.Context, coll string, filter interface{}) (bson.M, error)
	DeleteOne(ctx context.Context, coll string, filter interface{}) error
	Count(ctx context.Context, coll string, filter interface{}) (int64, error)
	Aggregate(ctx context.Context, coll string, pipeline mongo.Pipeline) ([]bson.M, error)

	// Diagnostics
	Name() string
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}
