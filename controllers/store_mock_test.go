package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MockStore is a mock of the database.Store interface.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) InsertOne(ctx context.Context, coll string, doc interface{}) (primitive.ObjectID, error) {
	args := m.Called(ctx, coll, doc)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockStore) Find(ctx context.Context, coll string, filter interface{}, opts ...*options.FindOptions) ([]bson.M, error) {
	args := m.Called(ctx, coll, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockStore) FindOne(ctx context.Context, coll string, filter interface{}) (bson.M, error) {
	args := m.Called(ctx, coll, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockStore) DeleteOne(ctx context.Context, coll string, filter interface{}) error {
	args := m.Called(ctx, coll, filter)
	return args.Error(0)
}

func (m *MockStore) Count(ctx context.Context, coll string, filter interface{}) (int64, error) {
	args := m.Called(ctx, coll, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) Aggregate(ctx context.Context, coll string, pipeline mongo.Pipeline) ([]bson.M, error) {
	args := m.Called(ctx, coll, pipeline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockStore) Name() string {
	return m.Called().String(0)
}

func (m *MockStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockStore) CollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
