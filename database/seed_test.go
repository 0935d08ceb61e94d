package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vibehunt/models"
)

// fakeStore records inserts per collection for seeding tests.
type fakeStore struct {
	postCount int64
	inserted  map[string][]interface{}
}

func newFakeStore(postCount int64) *fakeStore {
	return &fakeStore{postCount: postCount, inserted: map[string][]interface{}{}}
}

func (f *fakeStore) InsertOne(_ context.Context, coll string, doc interface{}) (primitive.ObjectID, error) {
	f.inserted[coll] = append(f.inserted[coll], doc)
	return primitive.NewObjectID(), nil
}

func (f *fakeStore) Find(context.Context, string, interface{}, ...*options.FindOptions) ([]bson.M, error) {
	return nil, nil
}

func (f *fakeStore) FindOne(context.Context, string, interface{}) (bson.M, error) {
	return nil, ErrNotFound
}

func (f *fakeStore) DeleteOne(context.Context, string, interface{}) error { return nil }

func (f *fakeStore) Count(_ context.Context, coll string, _ interface{}) (int64, error) {
	if coll == CollPost {
		return f.postCount, nil
	}
	return 0, nil
}

func (f *fakeStore) Aggregate(context.Context, string, mongo.Pipeline) ([]bson.M, error) {
	return nil, nil
}

func (f *fakeStore) Name() string { return "test" }

func (f *fakeStore) Ping(context.Context) error { return nil }

func (f *fakeStore) CollectionNames(context.Context) ([]string, error) { return nil, nil }

func TestSeedDemoPopulatesEmptyStore(t *testing.T) {
	store := newFakeStore(0)
	require.NoError(t, SeedDemo(context.Background(), store))

	assert.Len(t, store.inserted[CollPost], 4)
	// post i gets i+1 votes: 1+2+3+4
	assert.Len(t, store.inserted[CollVote], 10)
	assert.Len(t, store.inserted[CollComment], 4)

	for _, doc := range store.inserted[CollVote] {
		vote := doc.(models.Vote)
		assert.NotEmpty(t, vote.PostID)
		assert.Contains(t, vote.ClientID, "seed-client-")
	}
	for _, doc := range store.inserted[CollComment] {
		comment := doc.(models.Comment)
		assert.NotEmpty(t, comment.PostID)
		assert.Equal(t, "Love this!", comment.Content)
	}
}

func TestSeedDemoSkipsPopulatedStore(t *testing.T) {
	store := newFakeStore(7)
	require.NoError(t, SeedDemo(context.Background(), store))
	assert.Empty(t, store.inserted)
}
