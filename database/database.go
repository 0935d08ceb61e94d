package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vibehunt/config"
)

// MongoStore implements Store on top of a mongo database handle.
type MongoStore struct {
	db *mongo.Database
}

// Connect establishes a MongoDB connection using configuration values.
// A missing DatabaseURI is not an error here; the caller decides whether to
// run without a store (handlers then report it as unavailable).
func Connect(cfg config.AppConfig) (*MongoStore, error) {
	if cfg.DatabaseURI == "" {
		return nil, errors.New("database not configured")
	}

	opts := options.Client().
		ApplyURI(cfg.DatabaseURI).
		SetMaxPoolSize(20).
		SetMaxConnIdleTime(10 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	// Ping at boot to expose network or auth problems early; otherwise they
	// would only surface on the first query.
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &MongoStore{db: client.Database(cfg.DBName)}, nil
}

// InsertOne inserts a document and returns its assigned ObjectID.
func (s *MongoStore) InsertOne(ctx context.Context, coll string, doc interface{}) (primitive.ObjectID, error) {
	res, err := s.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("inserted id is not an ObjectID")
	}
	return oid, nil
}

// Find returns all documents matching the filter.
func (s *MongoStore) Find(ctx context.Context, coll string, filter interface{}, opts ...*options.FindOptions) ([]bson.M, error) {
	cur, err := s.db.Collection(coll).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindOne returns the first document matching the filter, or ErrNotFound.
func (s *MongoStore) FindOne(ctx context.Context, coll string, filter interface{}) (bson.M, error) {
	var doc bson.M
	err := s.db.Collection(coll).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteOne removes at most one document matching the filter.
func (s *MongoStore) DeleteOne(ctx context.Context, coll string, filter interface{}) error {
	_, err := s.db.Collection(coll).DeleteOne(ctx, filter)
	return err
}

// Count returns the number of documents matching the filter.
func (s *MongoStore) Count(ctx context.Context, coll string, filter interface{}) (int64, error) {
	return s.db.Collection(coll).CountDocuments(ctx, filter)
}

// Aggregate runs a pipeline against a collection and returns the raw documents.
func (s *MongoStore) Aggregate(ctx context.Context, coll string, pipeline mongo.Pipeline) ([]bson.M, error) {
	cur, err := s.db.Collection(coll).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Name returns the database name.
func (s *MongoStore) Name() string {
	return s.db.Name()
}

// Ping verifies the server is still reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// CollectionNames lists the collections of the database.
func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}
