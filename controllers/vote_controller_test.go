package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vibehunt/database"
)

func TestToggleVoteCasts(t *testing.T) {
	postOID := primitive.NewObjectID()
	voteOID := primitive.NewObjectID()

	store := new(MockStore)
	store.On("FindOne", mock.Anything, database.CollPost, bson.M{"_id": postOID}).
		Return(bson.M{"_id": postOID}, nil)
	store.On("FindOne", mock.Anything, database.CollVote, bson.M{"post_id": postOID.Hex(), "client_id": "c1"}).
		Return(nil, database.ErrNotFound)
	store.On("InsertOne", mock.Anything, database.CollVote, mock.Anything).
		Return(voteOID, nil)

	r := newTestRouter(store)
	w := doJSON(t, r, http.MethodPost, "/api/vote/toggle", map[string]string{
		"post_id":   postOID.Hex(),
		"client_id": "c1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "voted", body["status"])
	assert.Equal(t, voteOID.Hex(), body["id"])
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "DeleteOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleVoteRemoves(t *testing.T) {
	postOID := primitive.NewObjectID()
	voteOID := primitive.NewObjectID()

	store := new(MockStore)
	store.On("FindOne", mock.Anything, database.CollPost, bson.M{"_id": postOID}).
		Return(bson.M{"_id": postOID}, nil)
	store.On("FindOne", mock.Anything, database.CollVote, bson.M{"post_id": postOID.Hex(), "client_id": "c1"}).
		Return(bson.M{"_id": voteOID}, nil)
	store.On("DeleteOne", mock.Anything, database.CollVote, bson.M{"_id": voteOID}).
		Return(nil)

	r := newTestRouter(store)
	w := doJSON(t, r, http.MethodPost, "/api/vote/toggle", map[string]string{
		"post_id":   postOID.Hex(),
		"client_id": "c1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "unvoted", body["status"])
	assert.NotContains(t, body, "id")
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleVoteUnknownPost(t *testing.T) {
	postOID := primitive.NewObjectID()

	store := new(MockStore)
	store.On("FindOne", mock.Anything, database.CollPost, bson.M{"_id": postOID}).
		Return(nil, database.ErrNotFound)

	r := newTestRouter(store)
	w := doJSON(t, r, http.MethodPost, "/api/vote/toggle", map[string]string{
		"post_id":   postOID.Hex(),
		"client_id": "c1",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	store.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "DeleteOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleVoteMalformedPostID(t *testing.T) {
	store := new(MockStore)

	r := newTestRouter(store)
	w := doJSON(t, r, http.MethodPost, "/api/vote/toggle", map[string]string{
		"post_id":   "definitely-not-an-id",
		"client_id": "c1",
	})

	// A malformed identifier is reported exactly like a missing post, and the
	// store is never touched.
	assert.Equal(t, http.StatusNotFound, w.Code)
	store.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleVoteMissingFields(t *testing.T) {
	store := new(MockStore)

	r := newTestRouter(store)
	w := doJSON(t, r, http.MethodPost, "/api/vote/toggle", map[string]string{"post_id": primitive.NewObjectID().Hex()})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleVoteStoreUnavailable(t *testing.T) {
	r := newTestRouter(nil)
	w := doJSON(t, r, http.MethodPost, "/api/vote/toggle", map[string]string{
		"post_id":   primitive.NewObjectID().Hex(),
		"client_id": "c1",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
